package util

// Collection names
const (
	TenantCollection    string = "TENANT"
	ApartmentCollection string = "APARTMENT"
	PaymentCollection   string = "PAYMENT"
	MessageCollection   string = "MESSAGE"
)

// Cache key prefixes
const (
	TenantKey    string = "TENANT:"
	ApartmentKey string = "APARTMENT:"
)

// MaxTenantsPerApartment is the hard capacity of a single apartment.
const MaxTenantsPerApartment = 3

const (
	INVALID_CREDENTIALS          string = "Invalid credentials"
	TENANT_NOT_FOUND             string = "Tenant not found"
	APARTMENT_NOT_FOUND          string = "Apartment not found"
	APARTMENT_IS_FULL            string = "Apartment is full"
	NO_FIELDS_PROVIDED_TO_UPDATE string = "No fields provided to update"
	NAME_NOT_PROVIDED            string = "Name not provided"
	PASSWORD_NOT_PROVIDED        string = "Password not provided"
	TENANT_ID_NOT_PROVIDED       string = "TenantID not provided"
	SENDER_NOT_PROVIDED          string = "Sender not provided"
	RECEIVER_NOT_PROVIDED        string = "Receiver not provided"
	MESSAGE_NOT_PROVIDED         string = "Message not provided"
	RENT_AMOUNT_MUST_BE_A_NUMBER string = "Rent amount must be a number"
	AMOUNT_MUST_BE_A_NUMBER      string = "Amount must be a number"
)
