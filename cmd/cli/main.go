package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	apiKey  string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "picopay-cli",
		Short: "PicoPay CLI tool",
		Long:  `A command line interface for interacting with the PicoPay charge API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the PicoPay API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key sent in the X-API-Key header")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}
	accountsCmd.AddCommand(createAccountCmd())
	accountsCmd.AddCommand(getAccountCmd())

	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(chargeCmd())
	rootCmd.AddCommand(verifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createAccountCmd() *cobra.Command {
	var currency, openingBalance string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"currency":        currency,
				"opening_balance": openingBalance,
			}
			result, err := postJSON("/api/v1/accounts/", body, "")
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().StringVar(&openingBalance, "balance", "0", "Opening balance")

	return cmd
}

func getAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := getJSON("/api/v1/accounts/" + args[0])
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}
}

func chargeCmd() *cobra.Command {
	var accountID, amount, currency, idempotencyKey string

	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Charge an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"account_id": accountID,
				"amount":     amount,
				"currency":   currency,
			}
			result, err := postJSON("/api/v1/charges/", body, idempotencyKey)
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID to charge")
	cmd.Flags().StringVar(&amount, "amount", "", "Charge amount")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key (UUID); omit to generate one")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")

	return cmd
}

// verifyCmd fires N concurrent charge requests carrying one idempotency key
// and reports how many were applied versus replayed. A correct deployment
// applies exactly one.
func verifyCmd() *cobra.Command {
	var accountID, amount, currency string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify duplicate suppression with concurrent identical requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := uuid.NewString()
			body := map[string]string{
				"account_id": accountID,
				"amount":     amount,
				"currency":   currency,
			}

			results := make([]map[string]any, concurrency)
			errs := make([]error, concurrency)

			var wg sync.WaitGroup
			for i := 0; i < concurrency; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], errs[i] = postJSON("/api/v1/charges/", body, key)
				}(i)
			}
			wg.Wait()

			summary := summarizeVerify(results, errs)
			printJSON(summary)

			if summary.Applied != 1 {
				return fmt.Errorf("expected exactly 1 applied charge, got %d", summary.Applied)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID to charge")
	cmd.Flags().StringVar(&amount, "amount", "1.00", "Charge amount")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().IntVar(&concurrency, "concurrency", 10, "Number of concurrent requests")
	cmd.MarkFlagRequired("account")

	return cmd
}

type verifySummary struct {
	Requests int `json:"requests"`
	Applied  int `json:"applied"`
	Replayed int `json:"replayed"`
	Failed   int `json:"failed"`
}

func summarizeVerify(results []map[string]any, errs []error) verifySummary {
	summary := verifySummary{Requests: len(results)}

	for i, result := range results {
		if errs[i] != nil || result == nil {
			summary.Failed++
			continue
		}

		if idempotent, ok := result["idempotent"].(bool); ok && idempotent {
			summary.Replayed++
		} else {
			summary.Applied++
		}
	}

	return summary
}

func postJSON(path string, body any, idempotencyKey string) (map[string]any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	return doRequest(req)
}

func getJSON(path string) (map[string]any, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	return doRequest(req)
}

func doRequest(req *http.Request) (map[string]any, error) {
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return result, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(data))
	}

	return result, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to marshal output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
