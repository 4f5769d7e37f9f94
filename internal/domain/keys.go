package domain

type CtxKey string

const (
	KeyAccountID   CtxKey = "AccountID"
	KeyEmail       CtxKey = "Email"
	KeyAccountKind CtxKey = "Kind"
)
