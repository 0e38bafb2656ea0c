package core

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// App bundles the stores and the session manager.
// It is assembled in func main and passed around explicitly,
// so there is no process-wide application state.
type App struct {
	DepartmentDB
	UserDB
	WorkDB
	SessionManager *scs.SessionManager

	SqlDB *sql.DB // exported because main closes it
}

// Init sets up the session manager. A nil sessionStore keeps the scs
// default in-memory store, which is useful in tests.
func (a *App) Init(sessionStore scs.Store, cookiePath string) {

	a.SessionManager = scs.New()
	if sessionStore != nil {
		a.SessionManager.Store = sessionStore
	}
	a.SessionManager.Cookie.Path = cookiePath + "/"         // 'The default value is "/". Passing the empty string "" will result in it being set to the path that the cookie was issued from.'
	a.SessionManager.Cookie.Persist = false                 // Don't store cookie across browser sessions. Required for GDPR cookie consent exemption criterion B. https://ec.europa.eu/justice/article-29/documentation/opinion-recommendation/files/2012/wp194_en.pdf
	a.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	a.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	a.SessionManager.IdleTimeout = 12 * time.Hour
	a.SessionManager.Lifetime = 720 * time.Hour
}
