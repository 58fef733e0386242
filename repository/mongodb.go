package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zhaoyk90/estate_crm/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// 集合名
	CustomersCollection     = "customers"
	ActivitiesCollection    = "activities"
	MeetingsCollection      = "meetings"
	OperationLogsCollection = "operationLogs"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
	mu     sync.RWMutex
)

// InitMongoDB 初始化MongoDB连接
func InitMongoDB(uri, dbName string) error {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// 创建客户端
	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB失败: %w", err)
	}

	// 选择数据库
	mu.Lock()
	db = client.Database(dbName)
	mu.Unlock()
	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")

	return nil
}

// CloseMongoDB 关闭MongoDB连接
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
			return
		}
		utils.Logger.Info().Msg("已断开MongoDB连接")
	}
}

// GetContext 返回MongoDB操作的上下文
func GetContext() context.Context {
	return ctx
}

// Collection 返回指定名称的集合
func Collection(name string) *mongo.Collection {
	mu.RLock()
	defer mu.RUnlock()
	return db.Collection(name)
}

// InitializeCollections 初始化数据库集合
func InitializeCollections() error {
	collections := []string{
		CustomersCollection,
		ActivitiesCollection,
		MeetingsCollection,
		OperationLogsCollection,
	}

	for _, collName := range collections {
		// 检查集合是否存在
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("检查集合失败: %w", err)
		}

		// 如果不存在则创建
		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("创建集合失败: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("创建集合成功")
		} else {
			utils.Logger.Info().Str("collection", collName).Msg("集合已存在")
		}
	}

	// customerid 上建索引，按客户取活动/带看是最高频查询
	if err := ensureCustomerIndexes(); err != nil {
		return err
	}

	return nil
}

// ensureCustomerIndexes 为活动和带看集合建立 customerid 索引
func ensureCustomerIndexes() error {
	indexModel := mongo.IndexModel{
		Keys: bson.M{"customerid": 1},
	}

	for _, collName := range []string{ActivitiesCollection, MeetingsCollection} {
		if _, err := Collection(collName).Indexes().CreateOne(ctx, indexModel); err != nil {
			return fmt.Errorf("创建 %s 索引失败: %w", collName, err)
		}
	}
	return nil
}

// CollectionExists 检查集合是否存在
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// GetDatabaseStatus 获取数据库状态
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		CustomersCollection,
		ActivitiesCollection,
		MeetingsCollection,
		OperationLogsCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("获取集合计数失败")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
		} else {
			result[collName] = map[string]interface{}{
				"count": count,
			}
		}
	}

	return result, nil
}
