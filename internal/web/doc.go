// Package web serves the address book to browsers.
//
// Each browser gets its own session, identified by the addressbook_session
// cookie and owned by a session.Manager. Requests for one session run one at
// a time through Session.Do; idle sessions are expired by a janitor.
//
// Routes:
//
//	GET    /                      HTML page
//	GET    /api/contacts?q=TEXT   visible contacts, optionally setting the search
//	POST   /api/contacts          add a contact and select it
//	GET    /api/contacts/{id}     one contact
//	DELETE /api/contacts/{id}     remove a contact (204 even if already gone)
//	PUT    /api/selection         select {"id": ...}; "" deselects
//	GET    /api/editor            editor fields of the selected contact
//	PUT    /api/editor/{field}    write {"value": ...} to the selected contact
//	GET    /ws                    JSON feed of session changes
//	GET    /metrics               Prometheus metrics
package web
