package utils

import (
	"errors"
	"mime/multipart"
	"regexp"
	"strings"

	"arogya-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var shareTokenPattern = regexp.MustCompile(constvars.RegexShareToken)

func ValidateURLParamObjectID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := primitive.ObjectIDFromHex(param)
	return err
}

func ValidateShareToken(token string) error {
	if token == "" {
		return errors.New("token is missing from url path")
	}
	if !shareTokenPattern.MatchString(token) {
		return errors.New("token does not match the expected format")
	}
	return nil
}

func ValidateAttachment(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return nil
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	validExtensions := []string{".jpg", ".jpeg", ".png", ".pdf"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ext) {
			return nil
		}
	}
	return errors.New("invalid file format")
}
