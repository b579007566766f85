package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flipspider/internal/core"
)

// SaveShot writes the rendered frame to a plain-text file under
// ~/.flipspider/shots and returns the path. The file carries the final
// score in its name so runs stay distinguishable.
func SaveShot(screen *core.Screen, score int) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".flipspider", "shots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create shots directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("run_%s_score%d.txt", timestamp, score)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write shot: %w", err)
	}
	return path, nil
}
