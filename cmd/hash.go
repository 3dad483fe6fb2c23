package cmd

import (
	"fmt"
	"os"

	"github.com/takvimhub/event-calendar-service/pkg/util"

	"github.com/spf13/cobra"
)

func init() {
	var useBcrypt bool

	var hashCmd = &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the admin password digest for a password",
		Long: `Print the digest to place in security.admin-password-digest (or the
CALENDAR_ADMIN_DIGEST environment variable). Defaults to the canonical
sha256:<hex> form; -b emits a bcrypt hash instead.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if useBcrypt {
				digest, err := util.GenerateBcryptDigest(args[0])
				if err != nil {
					fmt.Fprintln(os.Stderr, "bcrypt digest error:", err)
					os.Exit(1)
				}
				fmt.Println(digest)
				return
			}
			fmt.Println(util.GeneratePasswordDigest(args[0]))
		},
	}

	hashCmd.Flags().BoolVarP(&useBcrypt, "bcrypt", "b", false, "emit a bcrypt hash")
	rootCmd.AddCommand(hashCmd)
}
