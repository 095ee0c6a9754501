package usecasecontract

// IValidator validates field formats ahead of any side effect.
type IValidator interface {
	ValidateEmail(email string) error
}
