package uploaders

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

const hashChunkSize = 64 * 1024

func fileSizeInBytes(pth string) (int64, error) {
	finfo, err := os.Stat(pth)
	if err != nil {
		return 0, err
	}
	return finfo.Size(), nil
}

// ContentSHA1 returns the hex encoded SHA-1 of the file, reading it in fixed-size chunks.
func ContentSHA1(pth string) (sum string, err error) {
	file, err := os.Open(pth)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	hash := sha1.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, rerr := file.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("failed to read file for hashing: %w", rerr)
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
