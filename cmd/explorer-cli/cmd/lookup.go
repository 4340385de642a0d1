package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"opensy-web/internal/search"
	"opensy-web/pkg/chainparams"
	"opensy-web/pkg/errno"
	"opensy-web/pkg/validator"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "按区块高度、哈希、交易或地址搜索",
		Long:  `Classify a query exactly like the explorer's search box and print the page it leads to.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := a.connect(cmd)
			if err != nil {
				return err
			}
			out := search.New(node, a.cfg.Explorer.AddressPrefixes).Classify(cmd.Context(), args[0])
			if out.Redirect == "" || out.Kind == search.KindEmpty {
				return fmt.Errorf("%w: %q", errno.ErrNotFound, args[0])
			}
			base := strings.TrimRight(a.cfg.Explorer.URL, "/")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\n", out.Kind, base, out.Redirect)
			return nil
		},
	}
}

func newBlockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "block <hash|height>",
		Short: "输出区块 JSON (verbosity 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := a.connect(cmd)
			if err != nil {
				return err
			}
			hash := args[0]
			if height, err := strconv.ParseInt(hash, 10, 64); err == nil && !validator.IsHash256(hash) {
				if hash, err = node.GetBlockHash(cmd.Context(), height); err != nil {
					return err
				}
			} else if !validator.IsHash256(hash) {
				return fmt.Errorf("%q is neither a height nor a 64 character block hash", args[0])
			}
			raw, err := node.GetBlockRaw(cmd.Context(), hash)
			if err != nil {
				return err
			}
			return writeIndented(cmd.OutOrStdout(), raw)
		},
	}
}

func newTxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <txid>",
		Short: "输出交易 JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validator.IsHash256(args[0]) {
				return fmt.Errorf("%q is not a 64 character transaction id", args[0])
			}
			node, err := a.connect(cmd)
			if err != nil {
				return err
			}
			raw, err := node.GetRawTransactionRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeIndented(cmd.OutOrStdout(), raw)
		},
	}
}

func newAddressCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "address <address>",
		Short: "本地解析地址类型与网络 (不访问节点)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := chainparams.Register(); err != nil {
				return err
			}
			info := chainparams.Describe(args[0])
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return err
			}
			if !info.Valid {
				return fmt.Errorf("%q is not a valid OpenSY address", args[0])
			}
			return nil
		},
	}
}

func writeIndented(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
