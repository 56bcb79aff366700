package emission

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleEmissions_Table(t *testing.T) {
	c := Default()

	cases := []struct {
		fuelType string
		want     VehicleResult
	}{
		{"petrol", VehicleResult{CO2Emissions: 18.48, FuelConsumed: 8.0}},
		{"diesel", VehicleResult{CO2Emissions: 18.76, FuelConsumed: 7.0}},
		{"electric", VehicleResult{CO2Emissions: 8.4, FuelConsumed: 20.0}},
		{"hybrid", VehicleResult{CO2Emissions: 7.5, FuelConsumed: 5.0}},
		{"cng", VehicleResult{CO2Emissions: 16.5, FuelConsumed: 6.0}},
	}
	for _, tc := range cases {
		t.Run(tc.fuelType, func(t *testing.T) {
			got, err := c.VehicleEmissions(100, tc.fuelType)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVehicleEmissions_ZeroAndNegativeDistance(t *testing.T) {
	c := Default()

	for _, d := range []float64{0, -10, math.NaN()} {
		got, err := c.VehicleEmissions(d, "petrol")
		require.NoError(t, err)
		assert.Equal(t, VehicleResult{}, got)
	}
}

func TestVehicleEmissions_UnknownFuel(t *testing.T) {
	c := Default()

	_, err := c.VehicleEmissions(100, "unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var ie *InvalidInputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "fuelType", ie.Field)
	assert.Equal(t, "unknown", ie.Value)
	assert.Equal(t, []string{"cng", "diesel", "electric", "hybrid", "petrol"}, ie.Accepted)
	assert.Contains(t, err.Error(), "petrol")
}

func TestZeroQuantitySkipsEnumCheck(t *testing.T) {
	c := Default()

	v, err := c.VehicleEmissions(0, "rocket")
	require.NoError(t, err)
	assert.Equal(t, VehicleResult{}, v)

	p, err := c.PlasticEmissions(-1, "styrofoam")
	require.NoError(t, err)
	assert.Zero(t, p)

	e, err := c.EnergyEmissions(math.NaN(), "nuclear", false)
	require.NoError(t, err)
	assert.Zero(t, e)

	_, err = c.VehicleEmissions(1, "rocket")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuantityUpperBound(t *testing.T) {
	c := Default()

	_, err := c.VehicleEmissions(MaxQuantity, "petrol")
	require.NoError(t, err)

	_, err = c.VehicleEmissions(1e12, "petrol")
	var ie *InvalidInputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "distance", ie.Field)

	_, err = c.PlasticEmissions(1e10, "bags")
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "quantity", ie.Field)

	_, err = c.EnergyEmissions(math.MaxFloat64, "coal", false)
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "amount", ie.Field)
}

func TestVehicleEmissions_NormalisesFuel(t *testing.T) {
	got, err := Default().VehicleEmissions(100, "  Petrol ")
	require.NoError(t, err)
	assert.Equal(t, 18.48, got.CO2Emissions)
}

func TestVehicleEmissions_InfiniteDistance(t *testing.T) {
	_, err := Default().VehicleEmissions(math.Inf(1), "petrol")
	var ie *InvalidInputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "distance", ie.Field)
}

func TestVehicleEmissions_Rounding(t *testing.T) {
	// 12.5 km of petrol: 1 L, 2.31 kg
	got, err := Default().VehicleEmissions(12.5, "petrol")
	require.NoError(t, err)
	assert.Equal(t, VehicleResult{CO2Emissions: 2.31, FuelConsumed: 1}, got)

	// 0.0625 L diesel * 2.68 = 0.1675 -> 0.17 (half away from zero)
	c, err := New(Factors{
		Vehicle: map[string]VehicleFactor{"diesel": {EmissionPerUnit: 2.68, ConsumptionPerKm: 0.0625}},
		Plastic: map[string]float64{"bags": 6},
		Energy:  map[string]float64{"coal": 0.34},
	})
	require.NoError(t, err)
	got, err = c.VehicleEmissions(1, "diesel")
	require.NoError(t, err)
	assert.Equal(t, 0.17, got.CO2Emissions)
	assert.Equal(t, 0.06, got.FuelConsumed)
}

func TestPlasticEmissions(t *testing.T) {
	c := Default()

	got, err := c.PlasticEmissions(1, "single-use")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	got, err = c.PlasticEmissions(0.5, "bottles")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = c.PlasticEmissions(0, "bags")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = c.PlasticEmissions(1, "unknown")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEnergyEmissions(t *testing.T) {
	c := Default()

	got, err := c.EnergyEmissions(100, "electricity", false)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	got, err = c.EnergyEmissions(100, "electricity", true)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = c.EnergyEmissions(-5, "coal", false)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = c.EnergyEmissions(100, "nuclear", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEnergyEmissions_RenewableSkipsSourceCheck(t *testing.T) {
	got, err := Default().EnergyEmissions(100, "nuclear", true)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTreeOffset(t *testing.T) {
	c := Default()

	for n, want := range map[int]TreeResult{
		5:  {CO2Offset: 110, EcoPoints: 50},
		0:  {},
		-3: {},
	} {
		got, err := c.TreeOffset(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTreeOffset_RejectsHugeCounts(t *testing.T) {
	c := Default()

	got, err := c.TreeOffset(MaxTreesPlanted)
	require.NoError(t, err)
	assert.Equal(t, MaxTreesPlanted*10, got.EcoPoints)
	assert.Less(t, got.EcoPoints, math.MaxInt32)

	for _, n := range []int{MaxTreesPlanted + 1, 1e18, math.MaxInt} {
		got, err := c.TreeOffset(n)
		var ie *InvalidInputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "treesPlanted", ie.Field)
		assert.Equal(t, TreeResult{}, got)
	}
}

func TestCalculator_Idempotent(t *testing.T) {
	c := Default()

	a1, err1 := c.VehicleEmissions(73.3, "hybrid")
	a2, err2 := c.VehicleEmissions(73.3, "hybrid")
	assert.Equal(t, a1, a2)
	assert.Equal(t, err1, err2)

	p1, _ := c.PlasticEmissions(2.25, "packaging")
	p2, _ := c.PlasticEmissions(2.25, "packaging")
	assert.Equal(t, p1, p2)

	e1, _ := c.EnergyEmissions(12.34, "heating-oil", false)
	e2, _ := c.EnergyEmissions(12.34, "heating-oil", false)
	assert.Equal(t, e1, e2)

	t1, _ := c.TreeOffset(3)
	t2, _ := c.TreeOffset(3)
	assert.Equal(t, t1, t2)
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	c := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.VehicleEmissions(100, "petrol")
			assert.NoError(t, err)
			assert.Equal(t, 18.48, got.CO2Emissions)
		}()
	}
	wg.Wait()
}

func TestNew_RejectsInvalidFactors(t *testing.T) {
	f := DefaultFactors()
	f.Energy["coal"] = -1

	_, err := New(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coal")

	f = DefaultFactors()
	f.Tree.EcoPoints = 1_000_000
	_, err = New(f)
	assert.ErrorContains(t, err, "tree eco points")
}

func TestNew_CopiesFactors(t *testing.T) {
	f := DefaultFactors()
	c, err := New(f)
	require.NoError(t, err)

	f.Plastic["bags"] = 100

	got, err := c.PlasticEmissions(1, "bags")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
	assert.Equal(t, 6.0, c.Factors().Plastic["bags"])
}

func TestCalculator_AcceptedLists(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"bags", "bottles", "packaging", "single-use"}, c.PlasticTypes())
	assert.Equal(t, []string{"coal", "electricity", "heating-oil", "natural-gas"}, c.EnergySources())
	assert.Len(t, c.FuelTypes(), 5)
	assert.Equal(t, 22.0, c.OffsetPerTree())
}
