package sdk

// Credentials are the transient sign-in inputs. They are submitted once
// and never persisted.
type Credentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// SignupInput are the transient sign-up inputs. Upstream form validation
// owns the field rules; the SDK submits them as given.
type SignupInput struct {
	Email       string
	FullName    string
	Password    string
	AcceptTerms bool
}

// AuthResult is the outcome of a sign-in or sign-up attempt. Message holds
// the server's own text when the attempt failed.
type AuthResult struct {
	Success bool
	Message string
}

// tokenResponse is the wire shape of successful auth responses.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// PaymentSetup is the server-issued secret that authorizes the payment
// widget for one checkout attempt. Single-use; held in memory only.
type PaymentSetup struct {
	ClientSecret string `json:"clientSecret"`
}

// PackageFeature is one line of a package's feature list.
type PackageFeature struct {
	Text        string `json:"text"`
	Important   bool   `json:"important,omitempty"`
	Description string `json:"description,omitempty"`
}

// Package is a catalog entry. Read-only reference data owned by the
// backend catalog.
type Package struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Subtitle        string           `json:"subtitle,omitempty"`
	Price           float64          `json:"price"`
	DiscountedPrice float64          `json:"discountedPrice,omitempty"`
	Duration        string           `json:"duration,omitempty"`
	Description     string           `json:"description,omitempty"`
	Highlight       string           `json:"highlight,omitempty"`
	Popular         bool             `json:"popular,omitempty"`
	Features        []PackageFeature `json:"features,omitempty"`
}

// TestCenter is a road-test center as returned by the centers listing.
type TestCenter struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// Preferences describe which centers, dates, and weekdays the user wants
// slot notifications for.
type Preferences struct {
	Email     string   `json:"email"`
	CenterIDs []int    `json:"centers"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Days      []string `json:"days"`
}
