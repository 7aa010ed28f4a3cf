package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexPhoneNumberGeneral           = `^\+[1-9]\d{9,14}$`
	RegexHealthID                     = `^MIG-[0-9a-f]{8}$`
	RegexShareToken                   = `^[0-9a-f]{32}$`
)
