package web

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config mirrors the window.BRS_CONFIG object the portal embeds in every
// page. Only a handful of fields matter to this client (UserHash,
// DefaultAPIBearer, APIURL) but the whole object is kept so a dump shows
// exactly what the portal served.
type Config struct {
	APIHost                          string            `json:"API_HOST"`
	APIPath                          string            `json:"API_PATH"`
	APIEnv                           string            `json:"API_ENV"`
	APIURL                           string            `json:"API_URL"`
	APIRefererFeatureID              string            `json:"API_REFERER_FEATURE_ID"`
	Locale                           string            `json:"LOCALE"`
	SubscriptionHost                 string            `json:"SUBSCRIPTION_HOST"`
	CustomerSubscriptionHost         string            `json:"CUSTOMER_SUBSCRIPTION_HOST"`
	ProspectSubscriptionHost         string            `json:"PROSPECT_SUBSCRIPTION_HOST"`
	Debug                            bool              `json:"DEBUG"`
	EnableProfiler                   bool              `json:"ENABLE_PROFILER"`
	AuthenticationEndpoint           string            `json:"AUTHENTICATION_ENDPOINT"`
	AppCustomerWebsiteHost           string            `json:"app_customer_website_host"`
	AppPortalWebsiteHost             string            `json:"app_portal_website_host"`
	PjaxEnabled                      bool              `json:"pjax_enabled"`
	PjaxTimeout                      int64             `json:"pjax_timeout"`
	PjaxOffsetDuration               int64             `json:"pjax_offset_duration"`
	SelectBarAutocloseTooltipTimeout int64             `json:"select_bar_autoclose_tooltip_timeout"`
	AppReleaseDate                   string            `json:"app_release_date"`
	UserHash                         string            `json:"USER_HASH"`
	JWTTokenID                       string            `json:"JWT_TOKEN_ID"`
	DefaultAPIBearer                 string            `json:"DEFAULT_API_BEARER"`
	JavascriptAppsBearer             map[string]string `json:"JAVASCRIPT_APPS_BEARER"`
	ApplicationName                  string            `json:"APPLICATION_NAME"`
	Webauth                          Webauth           `json:"webauth"`
	MarketingName                    string            `json:"MARKETING_NAME"`
}

// Webauth holds the webauthn endpoints advertised by the portal.
type Webauth struct {
	PreparePath string `json:"preparePath"`
	ValidPath   string `json:"validPath"`
}

// BearerExpiry returns the expiry of the API bearer. The token is decoded
// without signature verification: we are the audience, not the issuer.
func (c Config) BearerExpiry() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(c.DefaultAPIBearer, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot decode api bearer: %w", err)
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("api bearer has no expiry: %w", err)
	}
	return exp.Time, nil
}

var configPattern = regexp.MustCompile(`(?ms)window\.BRS_CONFIG\s*=\s*(?P<config>.*?);`)

// extractConfig scrapes window.BRS_CONFIG out of a portal page.
func extractConfig(body string) (Config, error) {
	m := configPattern.FindStringSubmatch(body)
	if m == nil {
		return Config{}, &PortalChangedError{Marker: "window.BRS_CONFIG"}
	}
	var config Config
	if err := json.Unmarshal([]byte(m[1]), &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode BRS_CONFIG: %w", err)
	}
	return config, nil
}
