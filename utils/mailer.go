package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient   *ses.Client
	mailSender  string
	mailAppName = "LifePulse"
)

func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	mailSender = os.Getenv("SES_EMAIL")
}

// composeMail joins the body lines and appends the standard sign-off.
func composeMail(lines ...string) string {
	lines = append(lines, "", fmt.Sprintf("The %s team", mailAppName))
	return strings.Join(lines, "\n")
}

func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(mailSender),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendMFAEmail(to string, code string) error {
	subject := fmt.Sprintf("%s sign-in code: %s", mailAppName, code)
	body := composeMail(
		fmt.Sprintf("Someone tried to sign in to your %s account.", mailAppName),
		"",
		fmt.Sprintf("Enter this code to continue: %s", code),
		"",
		"If this wasn't you, you can ignore this message.",
	)
	return sendEmail(to, subject, body)
}

func SendResetEmail(to string, token string) error {
	subject := fmt.Sprintf("Reset your %s password", mailAppName)
	body := composeMail(
		"We received a request to reset your password.",
		"",
		fmt.Sprintf("Your reset code: %s", token),
		"",
		"The code expires in 15 minutes. If you didn't ask for a reset, no action is needed.",
	)
	return sendEmail(to, subject, body)
}
