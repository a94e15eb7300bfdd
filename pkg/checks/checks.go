package checks

import (
	"fmt"

	checkfilename "github.com/ethpandaops/validator-info/pkg/checks/check_filename"
	checklogo "github.com/ethpandaops/validator-info/pkg/checks/check_logo"
	checkname "github.com/ethpandaops/validator-info/pkg/checks/check_name"
	checkonchainkeys "github.com/ethpandaops/validator-info/pkg/checks/check_onchain_keys"
	checkschema "github.com/ethpandaops/validator-info/pkg/checks/check_schema"
	"github.com/ethpandaops/validator-info/pkg/types"
)

// AvailableCheckDescriptors lists the checks of a validation run in execution order.
var AvailableCheckDescriptors = []*types.CheckDescriptor{
	checkschema.CheckDescriptor,
	checkname.CheckDescriptor,
	checklogo.CheckDescriptor,
	checkonchainkeys.CheckDescriptor,
	checkfilename.CheckDescriptor,
}

type CheckInfo struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

func AvailableChecks() []*CheckInfo {
	checks := make([]*CheckInfo, 0, len(AvailableCheckDescriptors))

	for _, descriptor := range AvailableCheckDescriptors {
		checks = append(checks, newCheckInfo(descriptor))
	}

	return checks
}

// GetChecks returns the named checks, all checks when names is empty.
func GetChecks(names []string) ([]*CheckInfo, error) {
	if len(names) == 0 {
		return AvailableChecks(), nil
	}

	checks := make([]*CheckInfo, 0, len(names))

	for _, name := range names {
		descriptor := GetCheckDescriptor(name)
		if descriptor == nil {
			return nil, fmt.Errorf("unknown check: %v", name)
		}

		checks = append(checks, newCheckInfo(descriptor))
	}

	return checks, nil
}

func newCheckInfo(descriptor *types.CheckDescriptor) *CheckInfo {
	return &CheckInfo{
		Name:        descriptor.Name,
		Description: descriptor.Description,
	}
}

func GetCheckDescriptor(name string) *types.CheckDescriptor {
	for _, descriptor := range AvailableCheckDescriptors {
		if descriptor.Name == name {
			return descriptor
		}
	}

	return nil
}
