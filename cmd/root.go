package cmd

import (
	"github.com/connectctl/connectctl/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:           "connectctl",
		Short:         "connectctl is CLI that lists Amazon Connect instances under AWS",
		Long:          "connectctl is CLI that lists Amazon Connect instances under AWS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Execute(version string) {
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		internal.RealPanic(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("profile", "p", "", "aws shared config profile")
	rootCmd.PersistentFlags().StringP("region", "r", internal.DefaultRegion, "aws region")
	rootCmd.PersistentFlags().StringP("accessKeyId", "k", "", "aws access key id")
	rootCmd.PersistentFlags().StringP("secretAccessKey", "s", "", "aws secret access key (requires accessKeyId)")
	rootCmd.PersistentFlags().StringP("secretSessionToken", "t", "", "aws session token (requires accessKeyId)")
	rootCmd.PersistentFlags().String("role-arn", "", "iam role arn to assume")

	// profile and static keys are different credential variants; a partial
	// triple can never reach the validating factory.
	rootCmd.MarkFlagsMutuallyExclusive("profile", "accessKeyId")
	rootCmd.MarkFlagsRequiredTogether("accessKeyId", "secretAccessKey", "secretSessionToken")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("accessKeyId", rootCmd.PersistentFlags().Lookup("accessKeyId"))
	viper.BindPFlag("secretAccessKey", rootCmd.PersistentFlags().Lookup("secretAccessKey"))
	viper.BindPFlag("secretSessionToken", rootCmd.PersistentFlags().Lookup("secretSessionToken"))
	viper.BindPFlag("role-arn", rootCmd.PersistentFlags().Lookup("role-arn"))
}
