package encrypt

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes bcrypt 只接受 72 字节以内的输入
const MaxPasswordBytes = 72

// HashPassword 生成 bcrypt 密码摘要
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 校验明文密码与摘要是否匹配
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
