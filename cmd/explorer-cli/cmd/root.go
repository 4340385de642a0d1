package cmd

import (
	"fmt"
	"os"

	"opensy-web/pkg/config"
	"opensy-web/pkg/rpcclient"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app carries what the subcommands share: the viper instance the flags are
// bound to and, once connect has run, the loaded config.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

// NewRootCmd 构造根命令及全部子命令
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "explorer-cli",
		Short: "OpenSY 区块浏览器命令行工具",
		Long: `Query an OpenSY node the way the explorer does.
Connection settings come from the same RPC_* environment variables and
config.yaml as the explorer; flags override them.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("rpc-host", "", "node RPC host (RPC_HOST)")
	flags.String("rpc-port", "", "node RPC port (RPC_PORT)")
	flags.String("rpc-user", "", "node RPC user (RPC_USER)")
	flags.String("explorer-url", "", "explorer base URL printed by search (EXPLORER_URL)")
	_ = a.v.BindPFlag("rpc.host", flags.Lookup("rpc-host"))
	_ = a.v.BindPFlag("rpc.port", flags.Lookup("rpc-port"))
	_ = a.v.BindPFlag("rpc.user", flags.Lookup("rpc-user"))
	_ = a.v.BindPFlag("explorer.url", flags.Lookup("explorer-url"))

	root.AddCommand(
		newStatusCmd(a),
		newSearchCmd(a),
		newBlockCmd(a),
		newTxCmd(a),
		newAddressCmd(a),
	)
	return root
}

// Execute 将所有子命令添加到根命令并执行
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) load() (*config.Config, error) {
	if a.cfg == nil {
		cfg, err := config.Load(a.v, config.Explorer)
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}
	return a.cfg, nil
}

// connect builds the node client, asking for the password on a terminal
// when none is configured.
func (a *app) connect(cmd *cobra.Command) (*rpcclient.Client, error) {
	cfg, err := a.load()
	if err != nil {
		return nil, err
	}

	rpcCfg := cfg.RPC
	if rpcCfg.Password == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(cmd.ErrOrStderr(), "RPC password for %s@%s: ", rpcCfg.User, rpcCfg.URL())
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		rpcCfg.Password = string(pw)
	}
	return rpcclient.New(rpcCfg)
}
