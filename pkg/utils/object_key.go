package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ObjectKey builds "<prefix>/<nanoid>.<ext>".
func ObjectKey(prefix, ext string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.%s", prefix, id, ext), nil
}
