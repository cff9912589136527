package handler

const (
	errInternalServer  = "Internal server error"
	errEmailTaken      = "Email is already taken"
	errBadCredentials  = "Email or password is incorrect"
	errLinkInvalid     = "Confirmation link is invalid or expired"
	errAccountNotFound = "Account not found"

	msgAlreadyConfirmed = "Account already confirmed"
	msgConfirmed        = "You have confirmed your account, thanks!"
)
