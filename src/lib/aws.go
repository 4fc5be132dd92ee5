package lib

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sesTypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// awsGetSdkClient loads the default credential chain and, when
// AWS_IAM_ROLE_ARN is set, swaps in credentials for that role.
func awsGetSdkClient(ctx context.Context) (*aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Error loading default config: %s\n", err.Error())
		return nil, err
	}
	iamRole := os.Getenv("AWS_IAM_ROLE_ARN")
	if iamRole == "" {
		return &cfg, nil
	}
	stsClient := sts.NewFromConfig(cfg)
	output, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(iamRole),
		RoleSessionName: aws.String("travel-api"),
	})
	if err != nil {
		log.Printf("Error configuring STS client: %s\n", err.Error())
		return nil, err
	}
	creds := output.Credentials
	cfg, err = config.LoadDefaultConfig(ctx, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(*creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken),
	))
	if err != nil {
		log.Printf("Error configuration: %s\n", err.Error())
		return nil, err
	}
	return &cfg, nil
}

func AWSGetSQSClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := awsGetSdkClient(ctx)
	if err != nil {
		log.Printf("Failed to initialize SQS client: %s\n", err.Error())
		return nil, err
	}
	return sqs.NewFromConfig(*cfg), nil
}

func AWSGetSNSClient(ctx context.Context) (*sns.Client, error) {
	cfg, err := awsGetSdkClient(ctx)
	if err != nil {
		log.Printf("Failed to initialize SNS client: %s\n", err.Error())
		return nil, err
	}
	return sns.NewFromConfig(*cfg), nil
}

func AWSGetSESClient(ctx context.Context) (*ses.Client, error) {
	cfg, err := awsGetSdkClient(ctx)
	if err != nil {
		log.Printf("Failed to initialize SES client: %s\n", err.Error())
		return nil, err
	}
	return ses.NewFromConfig(*cfg), nil
}

// SQSSendMessageAPI is the slice of the SQS client the notifier needs.
type SQSSendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type SQSNotifier struct {
	client   SQSSendMessageAPI
	queueURL string
}

func NewSQSNotifier(client SQSSendMessageAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{client: client, queueURL: queueURL}
}

func (n *SQSNotifier) Name() string {
	return "sqs"
}

func (n *SQSNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	payload, err := evt.Payload()
	if err != nil {
		return err
	}
	out, err := n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]sqsTypes.MessageAttributeValue{
			"event": {
				DataType:    aws.String("String"),
				StringValue: aws.String(BOOKING_CREATED),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	log.Printf("[SQS] Sent %s for booking %s as message %s\n", BOOKING_CREATED, evt.BookingID, aws.ToString(out.MessageId))
	return nil
}

type SNSPublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier fans booking events out to every subscriber of a topic.
type SNSNotifier struct {
	client   SNSPublishAPI
	topicArn string
}

func NewSNSNotifier(client SNSPublishAPI, topicArn string) *SNSNotifier {
	return &SNSNotifier{client: client, topicArn: topicArn}
}

func (n *SNSNotifier) Name() string {
	return "sns"
}

func (n *SNSNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	payload, err := evt.Payload()
	if err != nil {
		return err
	}
	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Message:  aws.String(string(payload)),
		Subject:  aws.String(BOOKING_CREATED),
		MessageAttributes: map[string]snsTypes.MessageAttributeValue{
			"event": {
				DataType:    aws.String("String"),
				StringValue: aws.String(BOOKING_CREATED),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	log.Printf("[SNS] Published %s for booking %s as message %s\n", BOOKING_CREATED, evt.BookingID, aws.ToString(out.MessageId))
	return nil
}

type SESSendEmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier sends the same confirmation mail as MailNotifier through SES.
type SESNotifier struct {
	client   SESSendEmailAPI
	from     string
	fromName string
}

func NewSESNotifier(client SESSendEmailAPI, from, fromName string) *SESNotifier {
	return &SESNotifier{client: client, from: from, fromName: fromName}
}

func (n *SESNotifier) Name() string {
	return "ses"
}

func (n *SESNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	if evt.Email == "" {
		return nil
	}
	input := BookingConfirmationMail(n.from, n.fromName, evt)
	out, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(fmt.Sprintf("%s <%s>", input.FromName, input.From)),
		Destination: &sesTypes.Destination{ToAddresses: input.To},
		Message: &sesTypes.Message{
			Subject: &sesTypes.Content{Data: aws.String(input.Subject), Charset: aws.String("UTF-8")},
			Body: &sesTypes.Body{
				Text: &sesTypes.Content{Data: aws.String(input.Body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	log.Printf("[SES] Sent confirmation for booking %s with id: %s\n", evt.BookingID, aws.ToString(out.MessageId))
	return nil
}
