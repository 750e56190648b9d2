package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/cs2cfg/crosshairctl/lib/sharecode"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a share code into a readable profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := sharecode.Decode(args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(profile)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <profile.yaml>",
	Short: "Encode a YAML profile file into a share code (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		profile := crosshair.Default()
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return err
		}
		code, err := sharecode.Encode(profile)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

var importName string

var importCmd = &cobra.Command{
	Use:   "import <code>",
	Short: "Decode a share code and store it in the profile library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := args[0]
		profile, err := sharecode.Decode(code)
		if err != nil {
			return err
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		name := importName
		if name == "" {
			name = fmt.Sprintf("imported-%d", lib.Len()+1)
		}
		if err := lib.Add(name, profile, code); err != nil {
			return err
		}
		if err := lib.Save(); err != nil {
			return err
		}
		fmt.Printf("Imported %s as %s\n", codeStyle.Render(code), nameStyle.Render(name))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Print the share code of a library profile",
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
		code, err := sharecode.Encode(entry.Profile)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profile library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		entries := lib.List()
		if len(entries) == 0 {
			fmt.Println(dimStyle.Render("library is empty; use import to add a profile"))
			return nil
		}
		for _, entry := range entries {
			code, err := sharecode.Encode(entry.Profile)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s  %s\n",
				nameStyle.Render(entry.Name),
				codeStyle.Render(code),
				dimStyle.Render(fmt.Sprintf("style=%s color=%s size=%g",
					entry.Profile.Style, entry.Profile.Color, entry.Profile.Size)))
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a library profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		if err := lib.Rename(args[0], args[1]); err != nil {
			return err
		}
		return lib.Save()
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a library profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		if err := lib.Remove(args[0]); err != nil {
			return err
		}
		return lib.Save()
	},
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "library name for the imported profile")
	rootCmd.AddCommand(decodeCmd, encodeCmd, importCmd, exportCmd, listCmd, renameCmd, rmCmd)
}
