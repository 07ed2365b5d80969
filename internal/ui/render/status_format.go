package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/huaga/internal/imaging"
	statepkg "github.com/kk-code-lab/huaga/internal/state"
	textutil "github.com/kk-code-lab/huaga/internal/textutil"
)

const statusSeparator = " · "

func formatStatusLeft(snap statepkg.Snapshot) string {
	if !snap.Loaded() {
		return "no image"
	}
	parts := []string{textutil.Sanitize(filepath.Base(snap.Path))}
	if snap.Animated {
		frame := fmt.Sprintf("%d/%d", snap.Frame+1, snap.Frames)
		if snap.Stopped {
			frame += " ended"
		}
		parts = append(parts, frame)
	}
	if zoom := formatZoom(snap.Zoom()); zoom != "" {
		parts = append(parts, zoom)
	}
	if info := formatImageInfo(snap.Info); info != "" {
		parts = append(parts, info)
	}
	return strings.Join(parts, statusSeparator)
}

func formatStatusRight(status Status) string {
	if status.Err != nil {
		return textutil.Sanitize(status.Err.Error())
	}
	return textutil.Sanitize(status.Message)
}

// formatPan shows how far a bitmap larger than the view is scrolled.
func formatPan(x, y int) string {
	if x == 0 && y == 0 {
		return ""
	}
	return fmt.Sprintf("@%d,%d", x, y)
}

func formatZoom(zoom float64) string {
	if zoom <= 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%%", zoom*100)
}

func formatImageInfo(info imaging.Info) string {
	var parts []string
	if info.Format != "" {
		parts = append(parts, info.Format)
	}
	if info.Width > 0 && info.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", info.Width, info.Height))
	}
	if info.Size > 0 {
		parts = append(parts, formatBytes(info.Size))
	}
	if camera := info.Camera(); camera != "" {
		parts = append(parts, textutil.Sanitize(camera))
	}
	return strings.Join(parts, " ")
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<30))) + "G"
	case n >= 1<<20:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<20))) + "M"
	case n >= 1<<10:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<10))) + "K"
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func trimTrailingZero(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "0"), ".")
}
