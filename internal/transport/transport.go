// Package transport provides a new server-entity(by ginext) for search-node operability with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc TaskProcessor
}

func NewNodeServer(addr string, proc TaskProcessor) *http.Server {
	h := handlers{proc: proc}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"failed to parse task from body": err.Error()})
		return
	}

	// задание без ID - присваиваем свой, чтобы результат можно было сопоставить
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}
	log.Printf("Received task: %q", task.TaskID)

	res := h.proc.ProcessTask(ctx.Request.Context(), &task)
	log.Printf("Task %q: %d matching lines", res.TaskID, len(res.Output))

	ctx.JSON(http.StatusOK, res)
}
