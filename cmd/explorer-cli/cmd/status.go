package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"opensy-web/pkg/rpcclient"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "显示节点与网络状态",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var (
				info    *rpcclient.BlockchainInfo
				mining  *rpcclient.MiningInfo
				peers   int64
				mempool *rpcclient.MempoolInfo
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) {
				info, err = node.GetBlockchainInfo(ctx)
				return err
			})
			g.Go(func() (err error) {
				mining, err = node.GetMiningInfo(ctx)
				return err
			})
			g.Go(func() (err error) {
				peers, err = node.GetConnectionCount(ctx)
				return err
			})
			g.Go(func() (err error) {
				mempool, err = node.GetMempoolInfo(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Chain:\t%s\n", info.Chain)
			fmt.Fprintf(w, "Blocks:\t%s\n", humanize.Comma(info.Blocks))
			fmt.Fprintf(w, "Best block:\t%s\n", info.BestBlockHash)
			fmt.Fprintf(w, "Difficulty:\t%s\n", humanize.CommafWithDigits(mining.Difficulty, 2))
			fmt.Fprintf(w, "Hash rate:\t%s\n", humanize.SIWithDigits(mining.NetworkHashPS, 2, "H/s"))
			fmt.Fprintf(w, "Peers:\t%d\n", peers)
			fmt.Fprintf(w, "Mempool:\t%s txs (%s)\n", humanize.Comma(mempool.Size), humanize.Bytes(uint64(mempool.Bytes)))
			return w.Flush()
		},
	}
}
