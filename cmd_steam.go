package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cs2cfg/crosshairctl/lib/cfg"
	"github.com/cs2cfg/crosshairctl/lib/config"
	"github.com/cs2cfg/crosshairctl/lib/steam"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List Steam accounts and their CS2 config directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := steam.FindRoot(config.Current().SteamPath)
		if err != nil {
			return err
		}
		accounts, err := steam.ScanAccounts(root)
		if err != nil {
			return err
		}
		fmt.Printf("Steam root: %s\n", root)
		for _, account := range accounts {
			marker := dimStyle.Render("no CS2 config")
			if account.HasConfig() {
				marker = fmt.Sprintf("%d config files", len(account.ConfigFiles))
			}
			fmt.Printf("%s  %s  %s\n",
				nameStyle.Render(account.ID), account.DisplayName(), marker)
			if account.HasConfig() && len(account.ConfigFiles) > 0 {
				fmt.Printf("    %s\n", dimStyle.Render(strings.Join(account.ConfigFiles, ", ")))
			}
		}
		return nil
	},
}

var (
	copyFrom     string
	copyTo       string
	copyBackup   bool
	applyAccount string
)

// accountByID resolves one scanned account.
func accountByID(accounts []steam.Account, id string) (steam.Account, error) {
	for _, account := range accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return steam.Account{}, oops.With("id", id).Errorf("no Steam account %s", id)
}

var copyCmd = &cobra.Command{
	Use:   "copy --from <account> --to <account>",
	Short: "Copy the CS2 config directory from one account to another",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if copyFrom == copyTo {
			return oops.Errorf("source and target accounts must differ")
		}
		if !cmd.Flags().Changed("backup") {
			copyBackup = config.Current().Backup
		}
		root, err := steam.FindRoot(config.Current().SteamPath)
		if err != nil {
			return err
		}
		accounts, err := steam.ScanAccounts(root)
		if err != nil {
			return err
		}
		source, err := accountByID(accounts, copyFrom)
		if err != nil {
			return err
		}
		if !source.HasConfig() {
			return oops.With("id", copyFrom).Errorf("account %s has no CS2 config to copy", copyFrom)
		}
		target, err := accountByID(accounts, copyTo)
		if err != nil {
			return err
		}
		targetPath := target.ConfigPath
		if targetPath == "" {
			targetPath = steam.DefaultConfigPath(root, target.ID)
		}

		backupPath, err := cfg.CopyConfig(source.ConfigPath, targetPath, copyBackup)
		if err != nil {
			return err
		}
		if backupPath != "" {
			fmt.Printf("Backed up previous config to %s\n", backupPath)
		}
		fmt.Printf("Copied CS2 config from %s to %s\n",
			nameStyle.Render(source.DisplayName()), nameStyle.Render(target.DisplayName()))
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <name> --account <account>",
	Short: "Write a library profile's crosshair settings into an account's config.cfg",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		entry, err := lib.Get(args[0])
		if err != nil {
			return err
		}

		root, err := steam.FindRoot(config.Current().SteamPath)
		if err != nil {
			return err
		}
		accounts, err := steam.ScanAccounts(root)
		if err != nil {
			return err
		}
		account, err := accountByID(accounts, applyAccount)
		if err != nil {
			return err
		}
		if !account.HasConfig() {
			return oops.With("id", applyAccount).Errorf("account %s has no CS2 config directory", applyAccount)
		}

		configFile := filepath.Join(account.ConfigPath, "config.cfg")
		if err := cfg.Apply(entry.Profile, configFile); err != nil {
			return err
		}
		fmt.Printf("Applied %s to %s\n",
			nameStyle.Render(entry.Name), configFile)
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVar(&copyFrom, "from", "", "source account id")
	copyCmd.Flags().StringVar(&copyTo, "to", "", "target account id")
	copyCmd.Flags().BoolVar(&copyBackup, "backup", true, "back up the target config first")
	_ = copyCmd.MarkFlagRequired("from")
	_ = copyCmd.MarkFlagRequired("to")

	applyCmd.Flags().StringVar(&applyAccount, "account", "", "target account id")
	_ = applyCmd.MarkFlagRequired("account")

	rootCmd.AddCommand(accountsCmd, copyCmd, applyCmd)
}
