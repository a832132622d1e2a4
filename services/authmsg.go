package services

// Canonical authentication failure codes. Provider-specific failures are
// mapped onto this fixed set before reaching the user.
const (
	AuthErrUnauthorizedDomain  = "auth/unauthorized-domain"
	AuthErrOperationNotAllowed = "auth/operation-not-allowed"
	AuthErrUserNotFound        = "auth/user-not-found"
	AuthErrWrongPassword       = "auth/wrong-password"
	AuthErrInvalidCredential   = "auth/invalid-credential"
	AuthErrTooManyRequests     = "auth/too-many-requests"
	AuthErrNetworkFailed       = "auth/network-request-failed"
)

// AuthErrorMessage returns the user-facing diagnostic for a canonical auth
// failure code. Unknown codes get a generic configuration hint.
func AuthErrorMessage(code string) string {
	switch code {
	case AuthErrUnauthorizedDomain:
		return "偵測到未經授權的來源網域。請將目前的部署網址加入授權網域白名單中。"
	case AuthErrOperationNotAllowed:
		return "尚未開啟 Email 登入功能。請在後台啟用 Email/Password 登入方法。"
	case AuthErrUserNotFound:
		return "帳號不存在，請確認 Email 是否正確。"
	case AuthErrWrongPassword:
		return "密碼錯誤，請重新輸入。"
	case AuthErrInvalidCredential:
		return "憑證無效，請檢查帳號密碼。"
	case AuthErrTooManyRequests:
		return "嘗試次數過多，系統已暫時鎖定該帳號。請稍後再試。"
	case AuthErrNetworkFailed:
		return "網路連線異常，請檢查連線狀態。"
	}
	return "發生未知的驗證錯誤，請檢查系統配置。"
}
