package imaging

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Info holds metadata about a decoded image file.
type Info struct {
	Format   string
	Width    int
	Height   int
	Frames   int
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// Camera returns the EXIF camera model, or "" when absent.
func (i Info) Camera() string {
	return i.EXIFData["Camera Model"]
}

func readInfo(data []byte, format string, bounds image.Rectangle, stat os.FileInfo) Info {
	info := Info{
		Format:   format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Frames:   1,
		EXIFData: make(map[string]string),
	}
	if stat != nil {
		info.Size = stat.Size()
		info.ModTime = stat.ModTime()
	}

	exifData, err := exif.Decode(bytes.NewReader(data))
	if err != nil || exifData == nil {
		// EXIF is optional; most PNG/GIF files carry none.
		return info
	}
	if camModel, err := exifData.Get(exif.Model); err == nil {
		if model, err := camModel.StringVal(); err == nil {
			info.EXIFData["Camera Model"] = model
		}
	}
	if fNum, err := exifData.Get(exif.FNumber); err == nil {
		if numer, denom, err := fNum.Rat2(0); err == nil && denom != 0 {
			info.EXIFData["F-Number"] = fmt.Sprintf("f/%.1f", float64(numer)/float64(denom))
		}
	}
	if expTime, err := exifData.Get(exif.ExposureTime); err == nil {
		if numer, denom, err := expTime.Rat2(0); err == nil {
			info.EXIFData["Exposure Time"] = fmt.Sprintf("%d/%d s", numer, denom)
		}
	}
	return info
}
