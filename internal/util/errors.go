package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrKitNotFound         = errors.New("learning kit not found")
	ErrSessionNotFound     = errors.New("study session not found")
	ErrSessionEnded        = errors.New("study session already ended")
	ErrUnsupportedLanguage = errors.New("unsupported preferred_language")
	ErrInvalidMood         = errors.New("invalid mood")
	ErrInvalidStyle        = errors.New("invalid learning style")
)
