package staking

// stakingABI holds the read-only getters of the staking precompile used by this tool.
const stakingABI = `[
  {
    "type": "function",
    "name": "getValidator",
    "stateMutability": "view",
    "inputs": [
      { "name": "validatorId", "type": "uint64", "internalType": "uint64" }
    ],
    "outputs": [
      { "name": "authAddress", "type": "address", "internalType": "address" },
      { "name": "flags", "type": "uint64", "internalType": "uint64" },
      { "name": "stake", "type": "uint256", "internalType": "uint256" },
      { "name": "accRewardPerToken", "type": "uint256", "internalType": "uint256" },
      { "name": "commission", "type": "uint256", "internalType": "uint256" },
      { "name": "unclaimedRewards", "type": "uint256", "internalType": "uint256" },
      { "name": "consensusStake", "type": "uint256", "internalType": "uint256" },
      { "name": "consensusCommission", "type": "uint256", "internalType": "uint256" },
      { "name": "snapshotStake", "type": "uint256", "internalType": "uint256" },
      { "name": "snapshotCommission", "type": "uint256", "internalType": "uint256" },
      { "name": "secpPubkey", "type": "bytes", "internalType": "bytes" },
      { "name": "blsPubkey", "type": "bytes", "internalType": "bytes" }
    ]
  }
]`

const getValidatorMethod = "getValidator"
