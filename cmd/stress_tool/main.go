package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// 压测：每个用户对同一条动态并发点赞多次，
// 期望每个用户恰好成功一次，likesCount 等于用户数
var (
	baseURL    = flag.String("url", "http://localhost:8080", "server base URL")
	users      = flag.Int("users", 50, "number of accounts")
	repeats    = flag.Int("repeats", 5, "concurrent likes per account")
	parallel   = flag.Int("parallel", 200, "max in-flight requests")
	httpClient *http.Client
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	author, err := signUp(ctx)
	if err != nil {
		log.Fatalf("sign up author: %v", err)
	}
	feedID, err := createFeed(ctx, author)
	if err != nil {
		log.Fatalf("create feed: %v", err)
	}

	tokens := make([]string, *users)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(20)
	for i := range tokens {
		g.Go(func() error {
			tok, err := signUp(gctx)
			tokens[i] = tok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("sign up users: %v", err)
	}

	fmt.Printf("开始压测：%d 个用户，每人并发点赞 %d 次 (feed %d)\n", *users, *repeats, feedID)

	var ok, conflict, failed atomic.Int64
	start := time.Now()

	g = &errgroup.Group{}
	g.SetLimit(*parallel)
	for _, tok := range tokens {
		for r := 0; r < *repeats; r++ {
			g.Go(func() error {
				status, err := call(ctx, http.MethodPost, fmt.Sprintf("/feeds/%d/like", feedID), tok, nil, nil)
				switch {
				case err != nil:
					failed.Add(1)
				case status == http.StatusOK:
					ok.Add(1)
				case status == http.StatusConflict:
					conflict.Add(1)
				default:
					failed.Add(1)
				}
				return nil
			})
		}
	}
	_ = g.Wait()
	duration := time.Since(start)

	var feed struct {
		LikesCount int64 `json:"likesCount"`
	}
	if _, err := call(ctx, http.MethodGet, fmt.Sprintf("/feeds/%d", feedID), "", nil, &feed); err != nil {
		log.Fatalf("read feed: %v", err)
	}

	total := *users * *repeats
	fmt.Println("--------------------------------------------------")
	fmt.Printf("耗时: %v, QPS: %.2f\n", duration, float64(total)/duration.Seconds())
	fmt.Printf("成功: %d (预期: %d)\n", ok.Load(), *users)
	fmt.Printf("重复点赞: %d (预期: %d)\n", conflict.Load(), total-*users)
	fmt.Printf("失败: %d\n", failed.Load())
	fmt.Printf("likesCount: %d (预期: %d)\n", feed.LikesCount, *users)
	fmt.Println("--------------------------------------------------")
}

func signUp(ctx context.Context) (string, error) {
	body := map[string]string{
		"email":    fmt.Sprintf("stress-%s@example.com", uuid.NewString()[:8]),
		"password": "stress-password",
	}
	var res struct {
		AccessToken string `json:"accessToken"`
	}
	if _, err := call(ctx, http.MethodPost, "/auth/signup", "", body, &res); err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func createFeed(ctx context.Context, token string) (int64, error) {
	body := map[string]interface{}{
		"images":  []string{"https://picsum.photos/400/400"},
		"caption": "stress",
	}
	var res struct {
		ID int64 `json:"id"`
	}
	if _, err := call(ctx, http.MethodPost, "/feeds", token, body, &res); err != nil {
		return 0, err
	}
	return res.ID, nil
}

// call 发送请求；out 非空时解析 data，业务码非 0 视为失败
func call(ctx context.Context, method, path, token string, in, out interface{}) (int, error) {
	var buf bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, *baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, err
	}
	if out == nil {
		return resp.StatusCode, nil
	}
	if env.Code != 0 {
		return resp.StatusCode, fmt.Errorf("%s %s: %d %s", method, path, env.Code, env.Message)
	}
	return resp.StatusCode, json.Unmarshal(env.Data, out)
}
