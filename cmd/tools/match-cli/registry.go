// cmd/tools/match-cli/registry.go
package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"idea-match-workers/pkg/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect and maintain the activity registry",
}

var registryValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the activity registry file",
	RunE:  runRegistryValidate,
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered activities",
	RunE:  runRegistryList,
}

var registryUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update one field of an activity",
	RunE:  runRegistryUpdate,
}

var (
	registryPath  string
	registryID    string
	registryField string
	registryValue string
)

func init() {
	registryCmd.PersistentFlags().StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	registryUpdateCmd.Flags().StringVar(&registryID, "task-type", "", "Task type of the activity to update (required)")
	registryUpdateCmd.Flags().StringVar(&registryField, "field", "", "Field to update: status, version, displayName, description, category, timeout, retries (required)")
	registryUpdateCmd.Flags().StringVar(&registryValue, "value", "", "New value for the field (required)")
	markRequired(registryUpdateCmd, "task-type", "field", "value")

	registryCmd.AddCommand(registryValidateCmd, registryListCmd, registryUpdateCmd)
	rootCmd.AddCommand(registryCmd)
}

func loadValidRegistry() (*registry.ActivityRegistry, error) {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("registry validation failed: %w", err)
	}
	return reg, nil
}

func runRegistryValidate(cmd *cobra.Command, _ []string) error {
	reg, err := loadValidRegistry()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

func runRegistryList(cmd *cobra.Command, _ []string) error {
	reg, err := loadValidRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TASK TYPE\tCATEGORY\tSTATUS\tTIMEOUT\tRETRIES")
	for _, a := range reg.Activities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", a.TaskType, a.Category, a.ImplementationStatus, a.Timeout, a.Retries)
	}
	return w.Flush()
}

func runRegistryUpdate(cmd *cobra.Command, _ []string) error {
	reg, err := loadValidRegistry()
	if err != nil {
		return err
	}

	a, ok := reg.Find(registryID)
	if !ok {
		return fmt.Errorf("activity %s not found", registryID)
	}
	if err := a.Set(registryField, registryValue); err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return err
	}

	reg.Touch(time.Now())
	if err := reg.Save(registryPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s=%s\n", registryID, registryField, registryValue)
	return nil
}
