package announce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncer_English(t *testing.T) {
	a := New("en")

	assert.Equal(t, "Now viewing Detail", a.RouteChanged("Detail"))
	assert.Equal(t, "Returned to List", a.RouteReturned("List"))
}

func TestAnnouncer_Italian(t *testing.T) {
	a := New("it")

	assert.Equal(t, "Ora visualizzi Detail", a.RouteChanged("Detail"))
	assert.Equal(t, "Tornato a List", a.RouteReturned("List"))
}

func TestAnnouncer_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	a := New("xx")

	assert.Equal(t, "Now viewing Detail", a.RouteChanged("Detail"))
}
