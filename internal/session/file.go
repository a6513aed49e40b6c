package session

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// copyFile copies src to dst and reports whether dst was created. dst is
// always writable by the owner, whatever the mode of src; replaceFile puts
// the original mode back at commit.
func copyFile(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, errors.New(src + " is a directory")
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()|0o200)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return true, err
	}
	return true, out.Close()
}

// replaceFile copies src into a temp file beside dst and renames it over dst,
// so dst holds either its old content or all of src. Symlinked targets are
// resolved so the link itself survives.
func replaceFile(src, dst string) error {
	if resolved, err := filepath.EvalSymlinks(dst); err == nil {
		dst = resolved
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(dst); err == nil {
		mode = info.Mode().Perm()
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".commit-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return err
	}
	ok = true
	return nil
}

// sameContent walks both files byte by byte. A file that is a strict prefix
// of the other counts as different.
func sameContent(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()
	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	ra := bufio.NewReader(fa)
	rb := bufio.NewReader(fb)
	for {
		ca, errA := ra.ReadByte()
		cb, errB := rb.ReadByte()
		endA := errors.Is(errA, io.EOF)
		endB := errors.Is(errB, io.EOF)
		if errA != nil && !endA {
			return false, errA
		}
		if errB != nil && !endB {
			return false, errB
		}
		if endA || endB {
			return endA && endB, nil
		}
		if ca != cb {
			return false, nil
		}
	}
}
