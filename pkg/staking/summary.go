package staking

import (
	"github.com/holiman/uint256"
)

// ValidatorSummary is the printable form of an on-chain validator record.
type ValidatorSummary struct {
	Network             string `yaml:"network" json:"network"`
	ChainID             uint64 `yaml:"chainId" json:"chainId"`
	BlockNumber         uint64 `yaml:"blockNumber" json:"blockNumber"`
	ClientVersion       string `yaml:"clientVersion,omitempty" json:"clientVersion,omitempty"`
	ID                  uint64 `yaml:"id" json:"id"`
	AuthAddress         string `yaml:"authAddress" json:"authAddress"`
	Flags               uint64 `yaml:"flags" json:"flags"`
	Stake               string `yaml:"stake" json:"stake"`
	AccRewardPerToken   string `yaml:"accRewardPerToken" json:"accRewardPerToken"`
	Commission          string `yaml:"commission" json:"commission"`
	UnclaimedRewards    string `yaml:"unclaimedRewards" json:"unclaimedRewards"`
	ConsensusStake      string `yaml:"consensusStake" json:"consensusStake"`
	ConsensusCommission string `yaml:"consensusCommission" json:"consensusCommission"`
	SnapshotStake       string `yaml:"snapshotStake" json:"snapshotStake"`
	SnapshotCommission  string `yaml:"snapshotCommission" json:"snapshotCommission"`
	Secp                string `yaml:"secp" json:"secp"`
	Bls                 string `yaml:"bls" json:"bls"`
}

func NewValidatorSummary(lookup *ValidatorLookup) *ValidatorSummary {
	v := lookup.Validator

	return &ValidatorSummary{
		Network:             lookup.Network,
		ChainID:             lookup.ChainID,
		BlockNumber:         lookup.BlockNumber,
		ClientVersion:       lookup.ClientVersion,
		ID:                  v.ID,
		AuthAddress:         v.AuthAddress.Hex(),
		Flags:               v.Flags,
		Stake:               formatAmount(v.Stake),
		AccRewardPerToken:   formatAmount(v.AccRewardPerToken),
		Commission:          formatAmount(v.Commission),
		UnclaimedRewards:    formatAmount(v.UnclaimedRewards),
		ConsensusStake:      formatAmount(v.ConsensusStake),
		ConsensusCommission: formatAmount(v.ConsensusCommission),
		SnapshotStake:       formatAmount(v.SnapshotStake),
		SnapshotCommission:  formatAmount(v.SnapshotCommission),
		Secp:                v.SecpHex(),
		Bls:                 v.BlsHex(),
	}
}

func formatAmount(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}

	return amount.Dec()
}
