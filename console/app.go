package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/rabbitoyo/catalog-admin-ui/backend"
	"github.com/rabbitoyo/catalog-admin-ui/catalog"
)

var ErrProductNotFound = errors.New("product not found")

// Session is the authentication state of the console. IsCheckingAuth is true
// only while the startup token verification round trip is in flight.
type Session struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsCheckingAuth  bool `json:"isCheckingAuth"`
}

// App holds everything the console shows: the session flags, the current
// product list, and the modal with its draft. All mutation goes through the
// methods below; the mutex keeps list replacement and modal edits at
// well-defined points even though gin serves handlers concurrently.
type App struct {
	mu    sync.Mutex
	auth  *backend.AuthClient
	admin *backend.AdminClient

	session  Session
	products []catalog.Product
	modal    catalog.Modal
}

func New(auth *backend.AuthClient, admin *backend.AdminClient) *App {
	return &App{auth: auth, admin: admin}
}

// State returns the current session flags.
func (a *App) State() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Products returns a snapshot of the product list.
func (a *App) Products() []catalog.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]catalog.Product, len(a.products))
	copy(out, a.products)
	return out
}

// StartupCheck validates a stored credential against the backend. An empty
// token means no credential was stored: the session simply stays signed out.
// On a verified token the product list is fetched before the session flips to
// authenticated. The credential is not cleared on failure; the caller decides
// that.
func (a *App) StartupCheck(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if token == "" {
		a.session.IsAuthenticated = false
		return nil
	}
	a.session.IsCheckingAuth = true
	err := a.auth.CheckToken(ctx, token)
	a.session.IsCheckingAuth = false
	if err != nil {
		a.session.IsAuthenticated = false
		return err
	}
	a.refreshLocked(ctx, token)
	a.session.IsAuthenticated = true
	return nil
}

// Login signs in against the backend. Failures propagate to the caller so
// the login page can show them inline; on success the product list is
// fetched and the returned credential is what the caller should persist.
func (a *App) Login(ctx context.Context, username, password string) (backend.Credential, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	cred, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		return backend.Credential{}, err
	}
	a.refreshLocked(ctx, cred.Token)
	a.session.IsAuthenticated = true
	return cred, nil
}

// Logout calls the backend logout endpoint best-effort and always resets the
// local state. A failed backend call is logged, never surfaced.
func (a *App) Logout(ctx context.Context, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if token != "" {
		if err := a.auth.Logout(ctx, token); err != nil {
			log.Printf("[catalog] logout call failed: %v", err)
		}
	}
	a.session.IsAuthenticated = false
	a.products = nil
}

// Refresh re-fetches the product list. A failed fetch is logged and leaves
// the prior list untouched.
func (a *App) Refresh(ctx context.Context, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.refreshLocked(ctx, token)
}

// refreshLocked replaces the list atomically on success; never a partial merge.
func (a *App) refreshLocked(ctx context.Context, token string) {
	products, err := a.admin.ListProducts(ctx, token)
	if err != nil {
		log.Printf("[catalog] fetch products failed: %v", err)
		return
	}
	a.products = products
}

// ToggleEnabled flips is_enabled on one product and sends the full updated
// record to the backend. Only that product changes locally, and only after
// the backend accepts it; a failed update is logged and local state stays as
// it was.
func (a *App) ToggleEnabled(ctx context.Context, token, id string) (catalog.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, p := range a.products {
		if p.ID != id {
			continue
		}
		updated := p
		if updated.IsEnabled == 1 {
			updated.IsEnabled = 0
		} else {
			updated.IsEnabled = 1
		}
		if err := a.admin.UpdateProduct(ctx, token, id, updated); err != nil {
			log.Printf("[catalog] toggle enabled for %s failed: %v", id, err)
			return p, nil
		}
		a.products[i] = updated
		return updated, nil
	}
	return catalog.Product{}, ErrProductNotFound
}

// OpenModal loads the modal for one of the open modes. Add always starts
// from the blank template; the other modes need an existing product.
func (a *App) OpenModal(mode catalog.Mode, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if mode == catalog.ModeAdd {
		a.modal.Open(mode, nil)
		return nil
	}
	for _, p := range a.products {
		if p.ID == id {
			a.modal.Open(mode, &p)
			return nil
		}
	}
	return ErrProductNotFound
}

// CloseModal hides the modal; the draft stays until the next open.
func (a *App) CloseModal() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modal.Close()
}

// ModalView is the renderable snapshot of the modal.
type ModalView struct {
	Mode    string          `json:"mode"`
	Draft   catalog.Draft   `json:"draft"`
	Product catalog.Product `json:"product"`
	Images  []string        `json:"images"`
}

func (a *App) Modal() ModalView {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := *a.modal.Draft()
	return ModalView{
		Mode:    a.modal.Mode().String(),
		Draft:   d,
		Product: a.modal.Product(),
		Images:  d.Images.Display(),
	}
}

// SetField updates one draft field from raw form input. Text is stored
// verbatim, the two price fields go through numeric normalization, and
// is_enabled is held as a bool until submit coerces it to 1/0.
func (a *App) SetField(field, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := a.modal.Draft()
	switch field {
	case "title":
		d.Title = value
	case "category":
		d.Category = value
	case "unit":
		d.Unit = value
	case "description":
		d.Description = value
	case "content":
		d.Content = value
	case "origin_price":
		d.OriginPrice = catalog.NormalizeNumber(value)
	case "price":
		d.Price = catalog.NormalizeNumber(value)
	case "is_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("is_enabled: %w", err)
		}
		d.IsEnabled = b
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// AddImage fills the next free image slot of the draft.
func (a *App) AddImage(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modal.Draft().Images.Add(url)
}

// RemoveImage clears the slot at index in the flat image sequence.
func (a *App) RemoveImage(index int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modal.Draft().Images.Remove(index)
}

// SaveDraft submits the coerced draft: create in add mode, full update in
// edit mode. On success the list is re-fetched and the modal closes; on
// failure the modal stays open and the error says which of the two failed.
func (a *App) SaveDraft(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.modal.Draft().Product()
	switch a.modal.Mode() {
	case catalog.ModeAdd:
		if err := a.admin.CreateProduct(ctx, token, p); err != nil {
			return fmt.Errorf("create product failed: %s", backend.ErrorMessage(err))
		}
	case catalog.ModeEdit:
		if err := a.admin.UpdateProduct(ctx, token, p.ID, p); err != nil {
			return fmt.Errorf("update product failed: %s", backend.ErrorMessage(err))
		}
	default:
		return fmt.Errorf("modal is %s, nothing to save", a.modal.Mode())
	}
	a.refreshLocked(ctx, token)
	a.modal.Close()
	return nil
}

// DeleteProduct removes the product loaded in the delete modal. On success
// the list is re-fetched and the modal closes; on failure it stays open.
func (a *App) DeleteProduct(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.modal.Mode() != catalog.ModeDelete {
		return fmt.Errorf("modal is %s, nothing to delete", a.modal.Mode())
	}
	id := a.modal.Product().ID
	if err := a.admin.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("delete product failed: %s", backend.ErrorMessage(err))
	}
	a.refreshLocked(ctx, token)
	a.modal.Close()
	return nil
}
