package launcher

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-coldchain-ledger/coldchain"
	"github.com/rony4d/go-coldchain-ledger/flags"
)

// runConfigFromArgs feeds synthetic CLI arguments through MakeAllConfigs.
func runConfigFromArgs(t *testing.T, args []string) Config {
	t.Helper()

	testApp := cli.NewApp()
	testApp.HideHelp = true
	testApp.HideVersion = true
	testApp.Flags = append(flags.CommonFlags(), flags.NetworkFlags()...)

	var got Config
	testApp.Action = func(c *cli.Context) error {
		got = MakeAllConfigs(c)
		return nil
	}
	if err := testApp.Run(append([]string{"coldchain"}, args...)); err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	return got
}

// TestMakeAllConfigs_defaults verifies that a bare invocation lands on the
// mainnet rule preset with the stock logging setup.
func TestMakeAllConfigs_defaults(t *testing.T) {
	cfg := runConfigFromArgs(t, nil)

	if cfg.Rules.NetworkID != coldchain.MainNetworkID {
		t.Errorf("NetworkID = %#x, want mainnet", cfg.Rules.NetworkID)
	}
	if cfg.Rules.Registry.MintFee != coldchain.DefaultMintFee {
		t.Errorf("MintFee = %d, want default %d", cfg.Rules.Registry.MintFee, coldchain.DefaultMintFee)
	}
	if cfg.Node.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want text", cfg.Node.Logging.Format)
	}
}

// TestMakeAllConfigs_networkSelection verifies that the --network flag picks
// the matching rule preset.
func TestMakeAllConfigs_networkSelection(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		wantID uint64
	}{
		{"main", []string{"--network", "main"}, coldchain.MainNetworkID},
		{"test", []string{"--network", "test"}, coldchain.TestNetworkID},
		{"fake", []string{"--network", "fake"}, coldchain.FakeNetworkID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := runConfigFromArgs(t, tt.args)
			if cfg.Rules.NetworkID != tt.wantID {
				t.Errorf("NetworkID = %#x, want %#x", cfg.Rules.NetworkID, tt.wantID)
			}
		})
	}
}

// TestMakeAllConfigs_flagOverrides verifies that fee, authority and logging
// flags override the preset values.
func TestMakeAllConfigs_flagOverrides(t *testing.T) {
	cfg := runConfigFromArgs(t, []string{
		"--network", "fake",
		"--fees.mint", "2500",
		"--fees.alert", "750",
		"--authority", "0x00000000000000000000000000000000000000cc",
		"--log.verbosity", "5",
		"--log.format", "json",
	})

	if cfg.Rules.Registry.MintFee != 2500 {
		t.Errorf("MintFee = %d, want 2500", cfg.Rules.Registry.MintFee)
	}
	if cfg.Rules.Alerts.AlertFee != 750 {
		t.Errorf("AlertFee = %d, want 750", cfg.Rules.Alerts.AlertFee)
	}
	want := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	if cfg.Authority != want {
		t.Errorf("Authority = %s, want %s", cfg.Authority.Hex(), want.Hex())
	}
	if cfg.Node.Logging.Verbosity != 5 {
		t.Errorf("Logging.Verbosity = %d, want 5", cfg.Node.Logging.Verbosity)
	}
	if cfg.Node.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Node.Logging.Format)
	}

	// Fakenet caps survive the fee overrides.
	if cfg.Rules.Registry.MaxBatches != 1000 {
		t.Errorf("MaxBatches = %d, want fakenet cap 1000", cfg.Rules.Registry.MaxBatches)
	}
}
