// Package announce produces localized navigation announcements, the strings
// a screen reader (or the console, on devices without one) speaks when the
// active route changes.
package announce

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Announcer localizes route-change announcements. The zero value is not
// usable; construct with New.
type Announcer struct {
	localizer *i18n.Localizer
}

// New creates an announcer for the given BCP 47 locale (e.g. "en", "it",
// "es-419"). Unknown locales fall back to English.
func New(locale string) *Announcer {
	bundle := i18n.NewBundle(language.English)

	mustAdd(bundle, language.English,
		&i18n.Message{ID: "route_changed", Other: "Now viewing {{.Route}}"},
		&i18n.Message{ID: "route_returned", Other: "Returned to {{.Route}}"},
	)
	mustAdd(bundle, language.Italian,
		&i18n.Message{ID: "route_changed", Other: "Ora visualizzi {{.Route}}"},
		&i18n.Message{ID: "route_returned", Other: "Tornato a {{.Route}}"},
	)
	mustAdd(bundle, language.Spanish,
		&i18n.Message{ID: "route_changed", Other: "Ahora viendo {{.Route}}"},
		&i18n.Message{ID: "route_returned", Other: "De vuelta en {{.Route}}"},
	)

	return &Announcer{
		localizer: i18n.NewLocalizer(bundle, locale),
	}
}

// RouteChanged returns the announcement for a forward navigation to route.
func (a *Announcer) RouteChanged(route string) string {
	return a.localize("route_changed", route)
}

// RouteReturned returns the announcement for a backward navigation to route.
func (a *Announcer) RouteReturned(route string) string {
	return a.localize("route_returned", route)
}

func (a *Announcer) localize(id, route string) string {
	msg, err := a.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]any{"Route": route},
	})
	if err != nil {
		return route
	}
	return msg
}

func mustAdd(bundle *i18n.Bundle, tag language.Tag, messages ...*i18n.Message) {
	if err := bundle.AddMessages(tag, messages...); err != nil {
		panic(err)
	}
}
