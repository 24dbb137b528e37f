// Package output writes rendered framebuffers to local files or blob buckets.
package output

import (
	"bufio"
	"context"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Format identifies an image encoding
type Format int

const (
	FormatPPM   Format = iota // Binary P6
	FormatPPMGz               // Binary P6, gzip-compressed
	FormatPNG                 // PNG
)

// FormatFor picks the encoding from the name's extension
func FormatFor(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".ppm.gz"):
		return FormatPPMGz, nil
	case strings.HasSuffix(lower, ".ppm"):
		return FormatPPM, nil
	case strings.HasSuffix(lower, ".png"):
		return FormatPNG, nil
	default:
		return 0, errors.Errorf("unsupported output format for %q (want .ppm, .ppm.gz or .png)", name)
	}
}

// Encode writes fb to w using the format chosen by FormatFor(name)
func Encode(w io.Writer, name string, fb *renderer.Framebuffer) error {
	format, err := FormatFor(name)
	if err != nil {
		return err
	}

	switch format {
	case FormatPPMGz:
		zw := gzip.NewWriter(w)
		zw.Name = strings.TrimSuffix(name[strings.LastIndex(name, "/")+1:], ".gz")
		if err := renderer.EncodePPM(zw, fb); err != nil {
			return errors.Wrap(err, "encoding ppm")
		}
		return errors.Wrap(zw.Close(), "finishing gzip stream")
	case FormatPNG:
		return errors.Wrap(png.Encode(w, renderer.ToImage(fb)), "encoding png")
	default:
		return errors.Wrap(renderer.EncodePPM(w, fb), "encoding ppm")
	}
}

// Write stores fb under key. An empty bucketURL means key is a local file
// path; otherwise the bucket is opened through the registered gocloud URL
// schemes (file://, gs://, mem:// when linked in).
func Write(ctx context.Context, bucketURL, key string, fb *renderer.Framebuffer) error {
	if bucketURL == "" {
		return WriteFile(key, fb)
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return errors.Wrapf(err, "opening bucket %s", bucketURL)
	}
	defer bucket.Close()

	return WriteBucket(ctx, bucket, key, fb)
}

// WriteFile creates or truncates the file at path and encodes fb into it
func WriteFile(path string, fb *renderer.Framebuffer) error {
	if _, err := FormatFor(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating output file %s", path)
	}

	buf := bufio.NewWriterSize(file, 1<<20)
	if err := Encode(buf, path, fb); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

// WriteBucket encodes fb into a new object named key in bucket
func WriteBucket(ctx context.Context, bucket *blob.Bucket, key string, fb *renderer.Framebuffer) error {
	if _, err := FormatFor(key); err != nil {
		return err
	}

	w, err := bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return errors.Wrapf(err, "opening writer for %s", key)
	}

	buf := bufio.NewWriterSize(w, 1<<20)
	if err := Encode(buf, key, fb); err != nil {
		w.Close()
		return errors.Wrapf(err, "writing %s", key)
	}
	if err := buf.Flush(); err != nil {
		w.Close()
		return errors.Wrapf(err, "writing %s", key)
	}
	return errors.Wrapf(w.Close(), "closing %s", key)
}
