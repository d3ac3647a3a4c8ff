//go:build unit

package promo_test

import (
	"testing"

	"plugin-storefront/internal/domain/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedDefinition() promo.Definition {
	return promo.Definition{
		Code:            "ABRACADABRA20",
		DiscountPercent: 20,
		MaxUses:         25,
		LinkedProductID: "abracadabra",
		Active:          true,
		TimedRelease:    &promo.TimedRelease{DurationHours: 24, ImmediateReleases: 5},
	}
}

func openDefinition() promo.Definition {
	return promo.Definition{
		Code:            "KVRFOAM",
		DiscountPercent: 20,
		MaxUses:         1000,
		LinkedProductID: "foam",
		Active:          true,
	}
}

type definitionCase struct {
	name   string
	mutate func(d *promo.Definition)
	errIs  error
}

func runDefinitionCases(t *testing.T, cases []definitionCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := timedDefinition()
			tc.mutate(&d)
			err := d.Validate()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefinition_Validate(t *testing.T) {
	t.Run("code", func(t *testing.T) {
		runDefinitionCases(t, []definitionCase{
			{name: "uppercase with digits", mutate: func(d *promo.Definition) { d.Code = "SPRING2025" }},
			{name: "empty", mutate: func(d *promo.Definition) { d.Code = "" }, errIs: promo.ErrInvalidDefinition},
			{name: "lowercase", mutate: func(d *promo.Definition) { d.Code = "spring" }, errIs: promo.ErrInvalidDefinition},
			{name: "whitespace", mutate: func(d *promo.Definition) { d.Code = "SPR ING" }, errIs: promo.ErrInvalidDefinition},
		})
	})

	t.Run("discount and caps", func(t *testing.T) {
		runDefinitionCases(t, []definitionCase{
			{name: "zero discount", mutate: func(d *promo.Definition) { d.DiscountPercent = 0 }},
			{name: "full discount", mutate: func(d *promo.Definition) { d.DiscountPercent = 100 }},
			{name: "discount above 100", mutate: func(d *promo.Definition) { d.DiscountPercent = 101 }, errIs: promo.ErrInvalidDefinition},
			{name: "negative discount", mutate: func(d *promo.Definition) { d.DiscountPercent = -1 }, errIs: promo.ErrInvalidDefinition},
			{name: "zero max uses", mutate: func(d *promo.Definition) { d.MaxUses = 0 }, errIs: promo.ErrInvalidDefinition},
			{name: "missing product", mutate: func(d *promo.Definition) { d.LinkedProductID = "" }, errIs: promo.ErrInvalidDefinition},
		})
	})

	t.Run("timed release", func(t *testing.T) {
		runDefinitionCases(t, []definitionCase{
			{name: "all immediate", mutate: func(d *promo.Definition) { d.TimedRelease.ImmediateReleases = d.MaxUses }},
			{name: "none immediate", mutate: func(d *promo.Definition) { d.TimedRelease.ImmediateReleases = 0 }},
			{name: "fractional hours", mutate: func(d *promo.Definition) { d.TimedRelease.DurationHours = 0.5 }},
			{name: "immediate above max uses", mutate: func(d *promo.Definition) { d.TimedRelease.ImmediateReleases = d.MaxUses + 1 }, errIs: promo.ErrInvalidDefinition},
			{name: "zero duration", mutate: func(d *promo.Definition) { d.TimedRelease.DurationHours = 0 }, errIs: promo.ErrInvalidDefinition},
			{name: "negative immediate", mutate: func(d *promo.Definition) { d.TimedRelease.ImmediateReleases = -1 }, errIs: promo.ErrInvalidDefinition},
		})
	})
}

func TestCatalog(t *testing.T) {
	inactive := openDefinition()
	inactive.Code = "RETIRED"
	inactive.Active = false

	catalog, err := promo.NewCatalog(timedDefinition(), openDefinition(), inactive)
	require.NoError(t, err)

	t.Run("lookup is case-insensitive and trims", func(t *testing.T) {
		d, ok := catalog.Lookup("  abracadabra20 ")
		require.True(t, ok)
		assert.Equal(t, "ABRACADABRA20", d.Code)
		assert.True(t, d.IsTimed())
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := catalog.Lookup("NOPE")
		assert.False(t, ok)
	})

	t.Run("inactive code is hidden from lookup", func(t *testing.T) {
		_, ok := catalog.Lookup("retired")
		assert.False(t, ok)

		d, ok := catalog.Definition("retired")
		require.True(t, ok)
		assert.False(t, d.Active)
	})

	t.Run("definitions are sorted by code", func(t *testing.T) {
		defs := catalog.Definitions()
		require.Len(t, defs, 3)
		assert.Equal(t, []string{"ABRACADABRA20", "KVRFOAM", "RETIRED"},
			[]string{defs[0].Code, defs[1].Code, defs[2].Code})
	})

	t.Run("codes are normalized before validation", func(t *testing.T) {
		d := openDefinition()
		d.Code = "kvrfoam"
		c, err := promo.NewCatalog(d)
		require.NoError(t, err)
		_, ok := c.Lookup("KVRFOAM")
		assert.True(t, ok)
	})

	t.Run("duplicate codes are rejected", func(t *testing.T) {
		d := openDefinition()
		d.Code = "kvrfoam"
		_, err := promo.NewCatalog(openDefinition(), d)
		assert.ErrorIs(t, err, promo.ErrDuplicateCode)
	})

	t.Run("invalid definitions are rejected", func(t *testing.T) {
		d := openDefinition()
		d.MaxUses = 0
		_, err := promo.NewCatalog(d)
		assert.ErrorIs(t, err, promo.ErrInvalidDefinition)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", promo.NormalizeEmail("  USER@Example.COM "))
	assert.Equal(t, promo.NormalizeEmail("user@example.com"), promo.NormalizeEmail("USER@EXAMPLE.COM"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, promo.ValidateEmail("user@example.com"))
	assert.ErrorIs(t, promo.ValidateEmail(""), promo.ErrInvalidEmail)
	assert.ErrorIs(t, promo.ValidateEmail("not-an-email"), promo.ErrInvalidEmail)
}
