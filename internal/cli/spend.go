package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sablereed/ritual/internal/tracker"
)

type SpendCmd struct {
	Points      int      `arg:"" help:"Points to spend."`
	Description []string `arg:"" help:"What the treat was."`
	Image       string   `short:"i" help:"Attach an image file." type:"path"`
}

func (c *SpendCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	image := ""
	if c.Image != "" {
		image, err = encodeImage(c.Image)
		if err != nil {
			return err
		}
	}

	reward, err := tr.Spend(c.Points, strings.Join(c.Description, " "), image)
	if errors.Is(err, tracker.ErrInsufficientBalance) {
		return fmt.Errorf("you only have %d ★ available, keep going", tr.Balance())
	}
	if err != nil {
		return err
	}

	fmt.Printf("Treated yourself: %s (-%d ★)\n", reward.Description, reward.PointsSpent)
	fmt.Printf("Balance: %d ★ (= %s)\n", tr.Balance(), tr.Exchange().FormatConverted(tr.Balance()))
	return nil
}

// encodeImage reads a file into a data URI for storage alongside the entry
func encodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mime := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".png":
		mime = "image/png"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
