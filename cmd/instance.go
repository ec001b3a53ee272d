package cmd

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/connectctl/connectctl/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	listInstancesCommand = &cobra.Command{
		Use:   "list-instances",
		Short: "Exec `connect list-instances` under AWS",
		Long:  "Exec `connect list-instances` under AWS",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			auth, err := authConfigFromFlags()
			if err != nil {
				return err
			}

			awsConfig, err := internal.NewConfig(ctx, auth)
			if err != nil {
				return internal.WrapError(err)
			}

			client := internal.NewConnectClient(awsConfig)
			return runListInstances(ctx, client, auth.Region, cmd.OutOrStdout())
		},
	}

	instanceCommand = &cobra.Command{
		Use:   "instance",
		Short: "Choose an Amazon Connect instance with interactive CLI",
		Long:  "Choose an Amazon Connect instance with interactive CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			auth, err := authConfigFromFlags()
			if err != nil {
				return err
			}

			awsConfig, err := internal.NewConfig(ctx, auth)
			if err != nil {
				return internal.WrapError(err)
			}

			client := internal.NewConnectClient(awsConfig)
			target, err := internal.AskConnectInstance(ctx, client)
			if err != nil {
				return errors.New(internal.ClassifyListError(err))
			}

			internal.LogConnectInstance(cmd.OutOrStdout(), "connect", auth.Region, *target)
			return nil
		},
	}
)

// authConfigFromFlags builds the validated credential selection; it fails
// before any network activity when neither variant is satisfied.
func authConfigFromFlags() (*internal.AuthConfig, error) {
	return internal.NewAuthConfig(
		strings.TrimSpace(viper.GetString("profile")),
		strings.TrimSpace(viper.GetString("region")),
		strings.TrimSpace(viper.GetString("accessKeyId")),
		strings.TrimSpace(viper.GetString("secretAccessKey")),
		strings.TrimSpace(viper.GetString("secretSessionToken")),
		strings.TrimSpace(viper.GetString("role-arn")),
	)
}

func runListInstances(ctx context.Context, client internal.InstanceLister, region string, w io.Writer) error {
	instances, err := internal.FindConnectInstances(ctx, client)
	if err != nil {
		return errors.New(internal.ClassifyListError(err))
	}

	internal.PrintConnectInstances(w, "connect", region, instances)
	return nil
}

func init() {
	rootCmd.AddCommand(listInstancesCommand)
	rootCmd.AddCommand(instanceCommand)
}
