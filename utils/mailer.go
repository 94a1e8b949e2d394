package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

func sendEmail(to, subject, htmlBody string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendConfirmationEmail delivers the account-verification link produced
// by the signup webhook.
func SendConfirmationEmail(to, verifyURL string) error {
	subject := "Confirme seu e-mail — Gym JM"
	body := fmt.Sprintf(`<html><body>
<h2>Bem-vindo ao Gym JM! 💪</h2>
<p>Clique no botão abaixo para confirmar seu e-mail e começar a treinar:</p>
<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#22c55e;color:#fff;border-radius:8px;text-decoration:none">Confirmar e-mail</a></p>
<p>Se você não criou essa conta, ignore esta mensagem.</p>
</body></html>`, verifyURL)
	return sendEmail(to, subject, body)
}

// SendResetEmail delivers a password reset code.
func SendResetEmail(to, token string) error {
	subject := "Código de redefinição de senha"
	body := fmt.Sprintf("<html><body><p>Seu código de redefinição é: <b>%s</b></p><p>Use-o no app para criar uma nova senha.</p></body></html>", token)
	return sendEmail(to, subject, body)
}
