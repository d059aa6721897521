package utils

// MaskPhone 138****5678，长度不足 7 位时只保留首位
func MaskPhone(phone string) string {
	r := []rune(phone)
	switch {
	case len(r) >= 7:
		return string(r[:3]) + "****" + string(r[len(r)-4:])
	case len(r) > 1:
		return string(r[:1]) + "****"
	default:
		return phone
	}
}
