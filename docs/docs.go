// Package docs swagger 文档，由 swag init 根据 handler 注释生成
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/session": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "当前会话",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/auth/signin": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "登录",
                "parameters": [
                    {
                        "description": "邮箱和密码",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_auth_model.SignInParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_auth_model.AuthResult"
                        }
                    }
                }
            }
        },
        "/auth/signout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "退出登录",
                "responses": {
                    "200": {
                        "description": "success",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "注册",
                "parameters": [
                    {
                        "description": "邮箱和密码",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_auth_model.SignUpParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_auth_model.AuthResult"
                        }
                    }
                }
            }
        },
        "/auth/user": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "当前账号",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_auth_model.Account"
                        }
                    }
                }
            }
        },
        "/comments/{id}": {
            "get": {
                "tags": [
                    "Comment"
                ],
                "summary": "获取评论详情",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "评论ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedCommentWithProfile"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Comment"
                ],
                "summary": "修改评论",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "评论ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedComment"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Comment"
                ],
                "summary": "删除评论",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "评论ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "获取动态流",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "发布动态",
                "parameters": [
                    {
                        "description": "动态内容",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.CreateFeedParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.Feed"
                        }
                    }
                }
            }
        },
        "/feeds/bookmarked": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "批量收藏状态",
                "parameters": [
                    {
                        "description": "动态ID列表",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_handler.BatchInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    }
                }
            }
        },
        "/feeds/liked": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "批量点赞状态",
                "parameters": [
                    {
                        "description": "动态ID列表",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_handler.BatchInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    }
                }
            }
        },
        "/feeds/mine": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "我的动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/feeds/status": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "获取动态流(含状态)",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/feeds/{id}": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "获取动态详情",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedWithProfile"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "修改动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "修改内容",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.UpdateFeedParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.Feed"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "删除动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds/{id}/bookmark": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "收藏",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedBookmark"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "取消收藏",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds/{id}/bookmarked": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "是否已收藏",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds/{id}/comments": {
            "get": {
                "description": "一级评论及其回复，按时间正序",
                "tags": [
                    "Comment"
                ],
                "summary": "获取评论",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedCommentWithProfile"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Comment"
                ],
                "summary": "发表评论",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "评论内容",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.CreateCommentParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedComment"
                        }
                    }
                }
            }
        },
        "/feeds/{id}/like": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "点赞",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedLike"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "取消点赞",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds/{id}/liked": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "是否已点赞",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feeds/{id}/share": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "分享",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedShare"
                        }
                    }
                }
            }
        },
        "/feeds/{id}/status": {
            "get": {
                "tags": [
                    "Feed"
                ],
                "summary": "获取动态详情(含状态)",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "动态ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedWithStatus"
                        }
                    }
                }
            }
        },
        "/me/bookmarks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "我收藏的动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/me/follow-counts": {
            "get": {
                "tags": [
                    "Follow"
                ],
                "summary": "关注/粉丝数",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_follow_model.FollowCounts"
                        }
                    }
                }
            }
        },
        "/me/followers": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Follow"
                ],
                "summary": "我的粉丝",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/me/followings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Follow"
                ],
                "summary": "我的关注",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/me/likes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "我点赞的动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/me/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "当前用户资料",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_profile_model.Profile"
                        }
                    }
                }
            },
            "patch": {
                "description": "只更新请求体中出现的字段，传 null 会清空该字段",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "修改资料",
                "parameters": [
                    {
                        "description": "修改内容",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_profile_model.UpdateProfileParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_profile_model.Profile"
                        }
                    }
                }
            }
        },
        "/me/shares": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "我分享的动态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.PageResult"
                        }
                    }
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Common"
                ],
                "summary": "上传图片到 OSS (支持批量)",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Files",
                        "name": "files",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "URLs",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/users/following": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Follow"
                ],
                "summary": "批量关注状态",
                "parameters": [
                    {
                        "description": "用户ID列表",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_follow_handler.BatchInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    }
                }
            }
        },
        "/users/profiles": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "批量获取用户资料",
                "parameters": [
                    {
                        "description": "用户ID列表",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_profile_handler.BatchInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/social_feed_internal_domain_profile_model.Profile"
                            }
                        }
                    }
                }
            }
        },
        "/users/{id}/follow": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Follow"
                ],
                "summary": "关注用户",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "success",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Follow"
                ],
                "summary": "取消关注",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/users/{id}/follow-counts": {
            "get": {
                "tags": [
                    "Follow"
                ],
                "summary": "关注/粉丝数",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_follow_model.FollowCounts"
                        }
                    }
                }
            }
        },
        "/users/{id}/following": {
            "get": {
                "tags": [
                    "Follow"
                ],
                "summary": "是否已关注",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/users/{id}/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "获取用户资料",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/social_feed_internal_domain_profile_model.Profile"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "description": "业务码",
                    "type": "integer"
                },
                "data": {
                    "description": "数据"
                },
                "message": {
                    "description": "提示信息",
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_auth_model.Account": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_auth_model.AuthResult": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "account": {
                    "$ref": "#/definitions/social_feed_internal_domain_auth_model.Account"
                },
                "expiresAt": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_auth_model.SignInParams": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_auth_model.SignUpParams": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "minLength": 6
                }
            }
        },
        "social_feed_internal_domain_feed_handler.BatchInput": {
            "type": "object",
            "properties": {
                "feedIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "social_feed_internal_domain_feed_model.CreateCommentParams": {
            "type": "object",
            "required": [
                "content"
            ],
            "properties": {
                "content": {
                    "type": "string"
                },
                "parentCommentId": {
                    "type": "integer"
                }
            }
        },
        "social_feed_internal_domain_feed_model.CreateFeedParams": {
            "type": "object",
            "properties": {
                "caption": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "social_feed_internal_domain_feed_model.Feed": {
            "type": "object",
            "properties": {
                "caption": {
                    "type": "string"
                },
                "commentsCount": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "likesCount": {
                    "type": "integer"
                },
                "sharedCount": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedBookmark": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "feedId": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedComment": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "feedId": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "parentCommentId": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedCommentWithProfile": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "feedId": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "parentCommentId": {
                    "type": "integer"
                },
                "replies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/social_feed_internal_domain_feed_model.FeedCommentWithProfile"
                    }
                },
                "userId": {
                    "type": "string"
                },
                "userProfiles": {
                    "$ref": "#/definitions/social_feed_internal_domain_profile_model.ProfileSummary"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedLike": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "feedId": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedShare": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "feedId": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedWithProfile": {
            "type": "object",
            "properties": {
                "caption": {
                    "type": "string"
                },
                "commentsCount": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "likesCount": {
                    "type": "integer"
                },
                "sharedCount": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                },
                "userProfiles": {
                    "$ref": "#/definitions/social_feed_internal_domain_profile_model.ProfileSummary"
                }
            }
        },
        "social_feed_internal_domain_feed_model.FeedWithStatus": {
            "type": "object",
            "properties": {
                "caption": {
                    "type": "string"
                },
                "commentsCount": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isBookmarked": {
                    "type": "boolean"
                },
                "isLiked": {
                    "type": "boolean"
                },
                "likesCount": {
                    "type": "integer"
                },
                "sharedCount": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                },
                "userProfiles": {
                    "$ref": "#/definitions/social_feed_internal_domain_profile_model.ProfileSummary"
                }
            }
        },
        "social_feed_internal_domain_feed_model.UpdateFeedParams": {
            "type": "object",
            "required": [
                "caption"
            ],
            "properties": {
                "caption": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_follow_handler.BatchInput": {
            "type": "object",
            "properties": {
                "userIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "social_feed_internal_domain_follow_model.FollowCounts": {
            "type": "object",
            "properties": {
                "followerCount": {
                    "type": "integer"
                },
                "followingCount": {
                    "type": "integer"
                }
            }
        },
        "social_feed_internal_domain_profile_handler.BatchInput": {
            "type": "object",
            "properties": {
                "userIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "social_feed_internal_domain_profile_model.Profile": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "followerCount": {
                    "type": "integer"
                },
                "followingCount": {
                    "type": "integer"
                },
                "nickname": {
                    "type": "string"
                },
                "postCount": {
                    "type": "integer"
                },
                "profileImageUrl": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_profile_model.ProfileSummary": {
            "type": "object",
            "properties": {
                "nickname": {
                    "type": "string"
                },
                "profileImageUrl": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "social_feed_internal_domain_profile_model.UpdateProfileParams": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "nickname": {
                    "type": "string"
                },
                "profileImageUrl": {
                    "type": "string"
                }
            }
        },
        "utils.PageResult": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "list": {},
                "offset": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Social Feed API",
	Description:      "Feeds, likes, bookmarks, shares, comments, follows and profiles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
