package create_room

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// Алфавит без визуально похожих символов (0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateAccessCode возвращает новый код доступа в верхнем регистре
func generateAccessCode() (string, error) {
	buf := make([]byte, domain.AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: failed to generate access code: %v", ErrInternal, err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// resolveAccessCode возвращает код для приватной комнаты: присланный
// вызывающим (нормализованный в верхний регистр) либо сгенерированный
func resolveAccessCode(req *Request) (string, error) {
	if req.Privacy != domain.PrivacyPrivate {
		return "", nil
	}
	if supplied := strings.ToUpper(strings.TrimSpace(req.AccessCode)); supplied != "" {
		return supplied, nil
	}
	return generateAccessCode()
}
