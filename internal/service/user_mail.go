package service

import (
	"fmt"
	"strings"
)

const (
	signupSubject   = "Активация страницы"
	recoverySubject = "Восстановление страницы"
)

// activationLink 邮件里的激活地址
func activationLink(baseURL, uuid string) string {
	return fmt.Sprintf("%s/api/users/activate/%s", strings.TrimRight(baseURL, "/"), uuid)
}

func signupMessage(baseURL, username, uuid string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Вы зарегистрировались на %s\n", baseURL)
	b.WriteString("Если это были не вы, проигнорируйте данное письмо.\n")
	fmt.Fprintf(&b, "Для активации пройдите по ссылке %s\n", activationLink(baseURL, uuid))
	fmt.Fprintf(&b, "Ваш логин - %s", username)
	return b.String()
}

// recoveryMessage 期限内给出激活链接，超期则建议重新注册
func recoveryMessage(baseURL, username, uuid string, withinWindow bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Вы направили запрос на восстановление профиля %s\n", baseURL)
	b.WriteString("Если это были не вы, проигнорируйте данное письмо.\n")
	if withinWindow {
		fmt.Fprintf(&b, "Пройдите по ссылке %s\n", activationLink(baseURL, uuid))
		fmt.Fprintf(&b, "Если вы забыли, ваш логин - %s", username)
		return b.String()
	}
	b.WriteString("К сожалению, временной порог на восстановление страницы пройден.\n")
	fmt.Fprintf(&b, "Вы всегда можете создать новый аккаунт %s/api/auth/register\n", strings.TrimRight(baseURL, "/"))
	b.WriteString("Будем рады видеть вас снова!")
	return b.String()
}
