package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rabbitoyo/catalog-admin-ui/catalog"
)

// Credential is what the sign-in endpoint returns: an opaque token and its
// unix expiry.
type Credential struct {
	Token   string
	Expired int64
}

// envelope is the common response shape of the catalog API. message can be a
// string or a list of strings depending on the endpoint.
type envelope struct {
	Success  *bool             `json:"success"`
	Message  json.RawMessage   `json:"message"`
	Token    string            `json:"token"`
	Expired  int64             `json:"expired"`
	Products []catalog.Product `json:"products"`
}

func (e *envelope) messageText() string {
	if len(e.Message) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Message, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(e.Message, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return string(e.Message)
}

// AuthClient talks to the authentication namespace of the backend. No token
// is attached; sign-in is the call that produces one.
type AuthClient struct {
	baseURL string
	http    *http.Client
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{}}
}

// SignIn exchanges credentials for a token and its expiry.
func (a *AuthClient) SignIn(ctx context.Context, username, password string) (Credential, error) {
	body := map[string]string{"username": username, "password": password}
	env, err := do(ctx, a.http, http.MethodPost, a.baseURL+"/admin/signin", "", body)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Token: env.Token, Expired: env.Expired}, nil
}

// Logout invalidates the token server-side.
func (a *AuthClient) Logout(ctx context.Context, token string) error {
	_, err := do(ctx, a.http, http.MethodPost, a.baseURL+"/logout", token, nil)
	return err
}

// CheckToken asks the backend whether the token is still good.
func (a *AuthClient) CheckToken(ctx context.Context, token string) error {
	_, err := do(ctx, a.http, http.MethodPost, a.baseURL+"/api/user/check", token, nil)
	return err
}

// AdminClient talks to the admin product namespace. Every request carries the
// stored token as the raw Authorization header value (the backend does not
// use a Bearer prefix).
type AdminClient struct {
	baseURL string
	path    string
	http    *http.Client
}

func NewAdminClient(baseURL, path string) *AdminClient {
	return &AdminClient{baseURL: strings.TrimRight(baseURL, "/"), path: path, http: &http.Client{}}
}

func (a *AdminClient) url(suffix string) string {
	return fmt.Sprintf("%s/api/%s/admin/%s", a.baseURL, a.path, suffix)
}

// ListProducts fetches the full product collection.
func (a *AdminClient) ListProducts(ctx context.Context, token string) ([]catalog.Product, error) {
	env, err := do(ctx, a.http, http.MethodGet, a.url("products"), token, nil)
	if err != nil {
		return nil, err
	}
	return env.Products, nil
}

// CreateProduct adds a new product record.
func (a *AdminClient) CreateProduct(ctx context.Context, token string, p catalog.Product) error {
	_, err := do(ctx, a.http, http.MethodPost, a.url("product"), token, map[string]catalog.Product{"data": p})
	return err
}

// UpdateProduct replaces the record identified by id with p.
func (a *AdminClient) UpdateProduct(ctx context.Context, token, id string, p catalog.Product) error {
	_, err := do(ctx, a.http, http.MethodPut, a.url("product/"+id), token, map[string]catalog.Product{"data": p})
	return err
}

// DeleteProduct removes the record identified by id.
func (a *AdminClient) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := do(ctx, a.http, http.MethodDelete, a.url("product/"+id), token, nil)
	return err
}

func do(ctx context.Context, client *http.Client, method, url, token string, body any) (*envelope, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var env envelope
	// The body is decoded even on error statuses; that is where the message lives.
	if derr := json.NewDecoder(res.Body).Decode(&env); derr != nil && res.StatusCode < 400 {
		return nil, fmt.Errorf("decode response: %w", derr)
	}
	if res.StatusCode >= 400 || (env.Success != nil && !*env.Success) {
		return nil, &APIError{Status: res.StatusCode, Message: env.messageText()}
	}
	return &env, nil
}
