package savegame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/domain"
)

func newTestCodec() *Codec {
	return NewCodec("demo", domain.DefaultCatalog())
}

func sampleState() domain.GameState {
	s := domain.NewGameState(domain.DefaultCatalog())
	s.Currency = 12.5
	s.TotalProduced = 140.25
	s.ClickYield = 3
	s.TotalClicks = 120
	s.Producers[0].Owned = 2
	s.Producers[0].CurrentCost = 19
	s.Producers[1].Owned = 1
	s.Producers[1].CurrentCost = 114
	return s
}

func fieldNames(errs []FieldError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestCodec_Keys(t *testing.T) {
	c := newTestCodec()
	assert.Equal(t, "demo:cookies", c.Key(FieldCookies))
	assert.Equal(t, []string{
		"demo:cookies", "demo:totalCookies", "demo:clickPower", "demo:totalClicks", "demo:producers",
	}, c.Keys())
	assert.Equal(t, "cookies", NewCodec("", nil).Key(FieldCookies))
}

func TestCodec_Encode(t *testing.T) {
	values, err := newTestCodec().Encode(sampleState())
	require.NoError(t, err)

	assert.Equal(t, "12.5", values["demo:cookies"])
	assert.Equal(t, "140.25", values["demo:totalCookies"])
	assert.Equal(t, "3", values["demo:clickPower"])
	assert.Equal(t, "120", values["demo:totalClicks"])
	assert.JSONEq(t, `[
		{"id":"cursor","owned":2,"cost":19},
		{"id":"grandma","owned":1,"cost":114},
		{"id":"farm","owned":0,"cost":1100},
		{"id":"mine","owned":0,"cost":12000},
		{"id":"factory","owned":0,"cost":130000}
	]`, values["demo:producers"])
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()
	want := sampleState()

	values, err := c.Encode(want)
	require.NoError(t, err)
	got, errs := c.Decode(values)

	assert.Empty(t, errs)
	assert.Equal(t, want, got)
}

func TestCodec_DecodeEmpty(t *testing.T) {
	got, errs := newTestCodec().Decode(nil)

	assert.Empty(t, errs)
	assert.Equal(t, domain.NewGameState(domain.DefaultCatalog()), got)
}

func TestCodec_DecodeTolerantFormats(t *testing.T) {
	c := newTestCodec()
	got, errs := c.Decode(map[string]string{
		"demo:cookies":      `"12.5"`,
		"demo:totalCookies": ` 99 `,
		"demo:clickPower":   `"2"`,
		"demo:totalClicks":  `30.0`,
		"demo:producers":    `"[{\"id\":\"grandma\",\"owned\":3,\"cost\":150}]"`,
	})

	require.Empty(t, errs)
	assert.Equal(t, 12.5, got.Currency)
	assert.Equal(t, 99.0, got.TotalProduced)
	assert.Equal(t, 2.0, got.ClickYield)
	assert.Equal(t, int64(30), got.TotalClicks)
	grandma := got.Producers[got.FindProducer(domain.ProducerGrandma)]
	assert.Equal(t, int64(3), grandma.Owned)
	assert.Equal(t, int64(150), grandma.CurrentCost)
}

func TestCodec_DecodeMalformedFieldsDefaultIndependently(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"garbage currency", "demo:cookies", "lots"},
		{"negative currency", "demo:cookies", "-4"},
		{"nan currency", "demo:cookies", "NaN"},
		{"infinite total", "demo:totalCookies", "+Inf"},
		{"click power below one", "demo:clickPower", "0.5"},
		{"fractional clicks", "demo:totalClicks", "12.5"},
		{"negative clicks", "demo:totalClicks", "-1"},
		{"producers not json", "demo:producers", "{oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec()
			values, err := c.Encode(sampleState())
			require.NoError(t, err)
			values[tt.key] = tt.value

			got, errs := c.Decode(values)

			require.Len(t, errs, 1)
			assert.True(t, errors.Is(errs[0], domain.ErrMalformedField))
			assert.Equal(t, tt.key, c.Key(errs[0].Field))

			defaults := domain.NewGameState(domain.DefaultCatalog())
			want := sampleState()
			switch errs[0].Field {
			case FieldCookies:
				want.Currency = defaults.Currency
			case FieldTotalCookies:
				want.TotalProduced = defaults.TotalProduced
			case FieldClickPower:
				want.ClickYield = defaults.ClickYield
			case FieldTotalClicks:
				want.TotalClicks = defaults.TotalClicks
			case FieldProducers:
				want.Producers = defaults.Producers
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCodec_DecodeProducerEntries(t *testing.T) {
	c := newTestCodec()
	got, errs := c.Decode(map[string]string{
		"demo:producers": `[
			{"id":"factory","owned":1,"cost":149500},
			{"id":"portal","owned":4,"cost":9},
			{"id":"cursor","owned":-2,"cost":40},
			{"id":"farm","owned":2,"cost":3}
		]`,
	})

	assert.Equal(t, []string{"producers.cursor"}, fieldNames(errs))

	ids := make([]string, len(got.Producers))
	for i, p := range got.Producers {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"cursor", "grandma", "farm", "mine", "factory"}, ids, "catalog order wins")

	cursor := got.Producers[0]
	assert.Equal(t, int64(0), cursor.Owned)
	assert.Equal(t, int64(15), cursor.CurrentCost)

	farm := got.Producers[2]
	assert.Equal(t, int64(2), farm.Owned)
	assert.Equal(t, int64(1100), farm.CurrentCost, "cost below base falls back to base")

	factory := got.Producers[4]
	assert.Equal(t, int64(1), factory.Owned)
	assert.Equal(t, int64(149500), factory.CurrentCost)
}

func TestCodec_DecodeFractionalCostFloors(t *testing.T) {
	got, errs := newTestCodec().Decode(map[string]string{
		"demo:producers": `[{"id":"cursor","owned":1,"cost":17.25}]`,
	})
	require.Empty(t, errs)
	assert.Equal(t, int64(17), got.Producers[0].CurrentCost)
}

func TestFieldError_Message(t *testing.T) {
	fe := FieldError{Field: FieldCookies, Err: errNegative}
	assert.Equal(t, "malformed saved field cookies: value is negative", fe.Error())
	assert.ErrorIs(t, fe, errNegative)
}
