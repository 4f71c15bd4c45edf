package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// PubSubQueue publishes mail events to a Google Pub/Sub topic and consumes
// them through a subscription. It is only wired up when GOOGLE_PROJECT_ID is
// configured; otherwise the in-process Worker is used.
type PubSubQueue struct {
	client    *pubsub.Client
	topic     *pubsub.Topic
	handler   *Handler
	topicName string
	subName   string
}

func NewPubSubQueue(projectID, topicName, credentialsFile string, handler *Handler, opts ...option.ClientOption) (*PubSubQueue, error) {
	ctx := context.Background()

	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	return &PubSubQueue{
		client:    client,
		topic:     client.Topic(topicName),
		handler:   handler,
		topicName: topicName,
		subName:   topicName + "-sub", // Convention: topic-sub
	}, nil
}

// Enqueue publishes the event without waiting for the result. Publish errors
// are logged when the server result resolves. All publishes go through the
// shared topic handle; its scheduler is stopped in Close.
func (q *PubSubQueue) Enqueue(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Mailer] Error encoding %s event: %v", event.Kind, err)
		return
	}

	result := q.topic.Publish(context.Background(), &pubsub.Message{Data: data})
	go func() {
		if _, err := result.Get(context.Background()); err != nil {
			log.Printf("[Mailer] Error publishing %s event for %s: %v", event.Kind, event.Email, err)
		}
	}()
}

// Start consumes mail events from the subscription, creating it if necessary.
func (q *PubSubQueue) Start(ctx context.Context) {
	log.Printf("[Mailer] Starting Pub/Sub consumer on topic %s, subscription %s", q.topicName, q.subName)

	sub := q.client.Subscription(q.subName)
	exists, err := sub.Exists(ctx)
	if err != nil {
		log.Printf("[Mailer] Error checking subscription existence: %v", err)
		return
	}

	if !exists {
		topicExists, err := q.topic.Exists(ctx)
		if err != nil {
			log.Printf("[Mailer] Error checking topic existence: %v", err)
			return
		}
		if !topicExists {
			if _, err := q.client.CreateTopic(ctx, q.topicName); err != nil {
				log.Printf("[Mailer] Failed to create topic: %v", err)
				return
			}
		}

		sub, err = q.client.CreateSubscription(ctx, q.subName, pubsub.SubscriptionConfig{
			Topic:       q.topic,
			AckDeadline: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[Mailer] Failed to create subscription: %v", err)
			return
		}
		log.Printf("[Mailer] Created subscription: %s", q.subName)
	}

	err = sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("[Mailer] Error decoding message: %v", err)
			msg.Ack()
			return
		}
		q.handler.Handle(ctx, event)
		msg.Ack()
	})
	if err != nil {
		log.Printf("[Mailer] Error receiving messages: %v", err)
	}
}

// Close flushes pending publishes and releases the underlying client.
func (q *PubSubQueue) Close() error {
	q.topic.Stop()
	return q.client.Close()
}
