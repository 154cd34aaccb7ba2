package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

const movieURL = "https://www.themoviedb.org/movie/%d"

// openBrowser opens the TMDB page of a movie in the default browser
func openBrowser(movieID int) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", etc.
		cmd = "xdg-open"
	}
	args = append(args, fmt.Sprintf(movieURL, movieID))

	return exec.Command(cmd, args...).Start()
}
