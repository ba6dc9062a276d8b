// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type SurfaceRecord struct {
	Kind      string      `json:"kind"`
	Transform [16]float64 `json:"transform"`
	Extent    Extent      `json:"extent"`
	Category  string      `json:"category,omitempty"`
}

type ExportRequestEvent struct {
	RequestID         uuid.UUID       `json:"request_id"`
	RoomName          string          `json:"room_name"`
	Surfaces          []SurfaceRecord `json:"surfaces"`
	Formats           []string        `json:"formats,omitempty"`
	IncludeDimensions bool            `json:"include_dimensions"`
}

// identityAt возвращает единичную матрицу с трансляцией (x, y, z)
func identityAt(x, y, z float64) [16]float64 {
	return [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func main() {
	redisAddr := flag.String("redis", "localhost:6380", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие: комната 4x3 метра с дверью и диваном
	event := ExportRequestEvent{
		RequestID: uuid.New(),
		RoomName:  "Living Room",
		Surfaces: []SurfaceRecord{
			{Kind: "wall", Transform: identityAt(2.0, 1.25, 0.05), Extent: Extent{Width: 4.0, Height: 2.5, Depth: 0.1}},
			{Kind: "wall", Transform: identityAt(2.0, 1.25, 2.95), Extent: Extent{Width: 4.0, Height: 2.5, Depth: 0.1}},
			{Kind: "wall", Transform: identityAt(0.05, 1.25, 1.5), Extent: Extent{Width: 0.1, Height: 2.5, Depth: 3.0}},
			{Kind: "wall", Transform: identityAt(3.95, 1.25, 1.5), Extent: Extent{Width: 0.1, Height: 2.5, Depth: 3.0}},
			{Kind: "door", Transform: identityAt(1.0, 1.0, 0.05), Extent: Extent{Width: 0.9, Height: 2.0, Depth: 0.1}},
			{Kind: "object", Transform: identityAt(2.5, 0.4, 2.2), Extent: Extent{Width: 2.0, Height: 0.8, Depth: 0.9}, Category: "sofa"},
		},
		Formats:           []string{"svg", "dxf"},
		IncludeDimensions: true,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:export:request",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:export:request\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Room: %s (%d surfaces)\n", event.RoomName, len(event.Surfaces))

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:export:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:export:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if reqID, ok := response["request_id"].(string); ok {
						if reqID == event.RequestID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
