package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage 将校验错误转换为首个字段的提示
func ValidationMessage(err error) (string, bool) {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "", false
	}
	first := vErrs[0]
	return fmt.Sprintf("field [%s] failed on rule [%s]", first.Field(), first.Tag()), true
}
