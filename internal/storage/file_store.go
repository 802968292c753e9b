package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math/rand/v2"
	"os"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"digiwork-hub.com/digiwork-hub/internal/constants"
)

// Upload is one file received from a client.
type Upload struct {
	Name    string
	Content io.Reader
}

// FileStore keeps attachments and avatars under two directories of fs.
// Returned paths are relative, e.g. "attachments/<uuid>.pdf".
type FileStore struct {
	fs afero.Fs
}

func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{fs: fs}
}

// NewOsFileStore roots the store at dir on the local disk.
func NewOsFileStore(dir string) (*FileStore, error) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	for _, sub := range []string{constants.AttachmentsDir, constants.ImagesDir} {
		if err := fs.MkdirAll(sub, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create %s directory", sub)
		}
	}
	store := NewFileStore(fs)
	if err := store.SeedPlaceholders(); err != nil {
		return nil, err
	}
	return store, nil
}

// SeedPlaceholders writes the avatar shown for deleted users when it is
// missing.
func (s *FileStore) SeedPlaceholders() error {
	if s.Exists(constants.DeletedUserImage) {
		return nil
	}
	if err := s.fs.MkdirAll(constants.ImagesDir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	var buf bytes.Buffer
	img := letterAvatar("?", color.NRGBA{R: 160, G: 160, B: 160, A: 255})
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return errors.Wrap(err, "encode placeholder")
	}
	if err := afero.WriteFile(s.fs, constants.DeletedUserImage, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", constants.DeletedUserImage)
	}
	return nil
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

func (s *FileStore) write(dir, ext string, r io.Reader) (string, error) {
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WithStack(err)
	}

	p := path.Join(dir, uuid.NewString()+"."+ext)
	f, err := s.fs.Create(p)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(p)
		return "", errors.Wrapf(err, "write %s", p)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(p)
		return "", errors.WithStack(err)
	}

	return p, nil
}

// SaveAttachment stores u under a generated name keeping its extension.
func (s *FileStore) SaveAttachment(u Upload) (string, error) {
	return s.write(constants.AttachmentsDir, extension(u.Name), u.Content)
}

// SaveAttachments stores every upload. On failure the files already written
// are removed.
func (s *FileStore) SaveAttachments(uploads []Upload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, u := range uploads {
		p, err := s.SaveAttachment(u)
		if err != nil {
			s.RemoveAll(paths)
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// SaveImage decodes an uploaded avatar, crops it to a square and stores it as PNG.
func (s *FileStore) SaveImage(u Upload) (string, error) {
	img, err := imaging.Decode(u.Content, imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Wrap(err, "decode image")
	}

	thumb := imaging.Fill(img, constants.AvatarSize, constants.AvatarSize, imaging.Center, imaging.Lanczos)
	return s.savePNG(thumb)
}

// GenerateAvatar renders the first letter of name on a random light background.
func (s *FileStore) GenerateAvatar(name string) (string, error) {
	bg := color.NRGBA{
		R: uint8(100 + rand.IntN(100)),
		G: uint8(100 + rand.IntN(100)),
		B: uint8(100 + rand.IntN(100)),
		A: 255,
	}

	letter := "?"
	for _, r := range name {
		letter = string(unicode.ToUpper(r))
		break
	}

	return s.savePNG(letterAvatar(letter, bg))
}

func letterAvatar(letter string, bg color.Color) image.Image {
	const cell = 20
	canvas := image.NewNRGBA(image.Rect(0, 0, cell, cell))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P((cell-7)/2, 15),
	}
	d.DrawString(letter)

	return imaging.Resize(canvas, constants.AvatarSize, constants.AvatarSize, imaging.NearestNeighbor)
}

func (s *FileStore) savePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", errors.Wrap(err, "encode png")
	}
	return s.write(constants.ImagesDir, "png", &buf)
}

func (s *FileStore) Open(p string) (afero.File, error) {
	f, err := s.fs.Open(path.Clean(p))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

func (s *FileStore) Exists(p string) bool {
	ok, err := afero.Exists(s.fs, path.Clean(p))
	return err == nil && ok
}

// Remove deletes p. A missing file is not an error.
func (s *FileStore) Remove(p string) error {
	if err := s.fs.Remove(path.Clean(p)); err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// RemoveAll removes every path, logging failures instead of returning them.
func (s *FileStore) RemoveAll(paths []string) {
	for _, p := range paths {
		if err := s.Remove(p); err != nil {
			zap.L().Warn("file removal failed", zap.String("path", p), zap.Error(err))
		}
	}
}

// ListOlderThan returns the files directly under dir last modified before cutoff.
func (s *FileStore) ListOlderThan(dir string, cutoff time.Time) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	var paths []string
	for _, info := range infos {
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		paths = append(paths, path.Join(dir, info.Name()))
	}
	return paths, nil
}
