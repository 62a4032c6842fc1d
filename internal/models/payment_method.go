package models

// PaymentMethod is an entry of the payment-method catalog.
type PaymentMethod struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Icon     string   `yaml:"icon"`
	Keywords []string `yaml:"keywords"`
	Active   bool     `yaml:"active"`
}

// PaymentMethodsConfig is the top-level structure of a payment methods YAML file.
type PaymentMethodsConfig struct {
	PaymentMethods []PaymentMethod `yaml:"payment_methods"`
}
