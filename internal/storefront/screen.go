package storefront

// Screen identifies which view the presentation layer should render.
type Screen string

const (
	ScreenStore    Screen = "store"
	ScreenCart     Screen = "cart"
	ScreenCheckout Screen = "checkout"
	ScreenLogin    Screen = "login"
	ScreenAdmin    Screen = "admin"
)

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	switch s {
	case ScreenStore, ScreenCart, ScreenCheckout, ScreenLogin, ScreenAdmin:
		return true
	}
	return false
}
