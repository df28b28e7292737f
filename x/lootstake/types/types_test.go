package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lootchain/x/lootstake/types"
)

func TestValidClass(t *testing.T) {
	require.True(t, types.ValidClass(types.ClassLoot))
	require.True(t, types.ValidClass(types.ClassMloot))
	require.False(t, types.ValidClass(""))
	require.False(t, types.ValidClass("Loot"))
	require.False(t, types.ValidClass("bloot"))
}

func TestEpochWeightsValidate(t *testing.T) {
	require.NoError(t, types.EpochWeights{LootBps: 6000, MlootBps: 4000}.Validate())
	require.NoError(t, types.EpochWeights{LootBps: 10_000, MlootBps: 0}.Validate())
	require.ErrorIs(t, types.EpochWeights{LootBps: 6000, MlootBps: 4001}.Validate(), types.ErrWeightsInvalid)
	require.ErrorIs(t, types.EpochWeights{}.Validate(), types.ErrWeightsInvalid)

	// A column above the unit must fail even when the uint64 sum wraps back
	// to exactly 10000.
	require.ErrorIs(t, types.EpochWeights{LootBps: math.MaxUint64, MlootBps: 10_001}.Validate(), types.ErrWeightsInvalid)
	require.ErrorIs(t, types.EpochWeights{LootBps: 10_001, MlootBps: math.MaxUint64}.Validate(), types.ErrWeightsInvalid)
	require.ErrorIs(t, types.EpochWeights{LootBps: 20_000, MlootBps: 0}.Validate(), types.ErrWeightsInvalid)
}

func TestEpochWeightsWeightFor(t *testing.T) {
	w := types.EpochWeights{LootBps: 6000, MlootBps: 4000}
	require.Equal(t, uint64(6000), w.WeightFor(types.ClassLoot))
	require.Equal(t, uint64(4000), w.WeightFor(types.ClassMloot))
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mut    func(*types.Params)
		expErr string
	}{
		{name: "defaults are valid", mut: func(*types.Params) {}},
		{name: "bad denom", mut: func(p *types.Params) { p.RewardDenom = "7" }, expErr: "denom"},
		{name: "missing class id", mut: func(p *types.Params) { p.LootClassId = "" }, expErr: "class ids"},
		{name: "identical class ids", mut: func(p *types.Params) { p.MlootClassId = p.LootClassId }, expErr: "differ"},
		{name: "zero epochs", mut: func(p *types.Params) { p.NumEpochs = 0 }, expErr: "num_epochs"},
		{name: "zero duration", mut: func(p *types.Params) { p.EpochDuration = 0 }, expErr: "epoch_duration"},
		{name: "bad default weights", mut: func(p *types.Params) { p.DefaultWeights.LootBps = 1 }, expErr: "weights"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := types.DefaultParams()
			tc.mut(&p)
			err := p.Validate()
			if tc.expErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expErr)
		})
	}
}

func TestParamsClassID(t *testing.T) {
	p := types.Params{LootClassId: "agld.loot", MlootClassId: "agld.mloot"}
	require.Equal(t, "agld.loot", p.ClassID(types.ClassLoot))
	require.Equal(t, "agld.mloot", p.ClassID(types.ClassMloot))
}

func TestStakePositionIsEmpty(t *testing.T) {
	require.True(t, types.StakePosition{}.IsEmpty())
	require.False(t, types.StakePosition{Epochs: []uint64{3}}.IsEmpty())
}
