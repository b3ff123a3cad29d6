package interfaces

// Validator abstract interface
type Validator interface {
	// ValidateStruct method, rules from struct tag using github.com/go-playground/validator
	ValidateStruct(data interface{}) error
}
