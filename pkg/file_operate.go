package pkg

import (
	"os"
	"path/filepath"

	"github.com/zeebo/errs/v2"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errs.Wrap(err)
	}
	return true, nil
}

// WriteFileAtomic 先写临时文件再重命名，避免写一半的文件；保留原文件权限
func WriteFileAtomic(filePath string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(filePath); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrap(err)
	}
	if err = tmp.Close(); err != nil {
		return errs.Wrap(err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return errs.Wrap(err)
	}
	if err = os.Rename(tmp.Name(), filePath); err != nil {
		return errs.Wrap(err)
	}
	return nil
}
